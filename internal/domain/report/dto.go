package report

import (
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/validator"
)

type Type string

const (
	TypeAttendance Type = "attendance"
	TypeTimesheet  Type = "timesheet"
	TypeLeave      Type = "leave"
	TypeOvertime   Type = "overtime"
	TypeAOL        Type = "aol"
	TypeRoster     Type = "roster"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAttendance, TypeTimesheet, TypeLeave, TypeOvertime, TypeAOL, TypeRoster:
		return true
	}
	return false
}

type Request struct {
	Type  string
	Start string
	End   string
}

func (r *Request) Validate() error {
	var errs validator.ValidationErrors

	if r.Type == "" {
		r.Type = string(TypeAttendance)
	}
	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of attendance, timesheet, leave, overtime, aol, roster"})
	}
	if r.Start != "" {
		if _, ok := validator.IsValidDate(r.Start); !ok {
			errs = append(errs, validator.ValidationError{Field: "start", Message: "start must be YYYY-MM-DD"})
		}
	}
	if r.End != "" {
		if _, ok := validator.IsValidDate(r.End); !ok {
			errs = append(errs, validator.ValidationError{Field: "end", Message: "end must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period resolves the requested date range. Missing bounds collapse to
// today, matching the original behavior.
func (r *Request) Period(now time.Time) (start, end time.Time) {
	start, end = now, now
	if r.Start != "" {
		if d, ok := validator.IsValidDate(r.Start); ok {
			start = d
		}
	}
	if r.End != "" {
		if d, ok := validator.IsValidDate(r.End); ok {
			end = d
		}
	}
	// include the whole end day
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// Document is a fully materialized CSV report.
type Document struct {
	Type     Type
	Filename string
	Content  []byte
}

// ========================================
// REPORT ROWS
// ========================================

type AttendanceRow struct {
	Date        time.Time
	OfficerName string
	AONumber    string
	PCNumber    string
	ClockIn     time.Time
	ClockOut    *time.Time
	Hours       *float64
	Station     string
}

type TimesheetRow struct {
	OfficerName string
	AONumber    string
	Date        time.Time
	ClockIn     time.Time
	ClockOut    time.Time
	Hours       float64
	IsOvertime  bool
}

type LeaveRow struct {
	OfficerName string
	AONumber    string
	LeaveType   string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Status      string
}

type OvertimeRow struct {
	OfficerName string
	AONumber    string
	Date        time.Time
	Hours       float64
	Station     string
}

type AOLRow struct {
	OfficerName string
	AONumber    string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Station     string
}

type RosterRow struct {
	Station     string
	OfficerName string
	AONumber    string
	PCNumber    string
	Rank        string
}
