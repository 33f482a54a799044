package attendance

import (
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	OfficerID string  `json:"officer_id"`
	ShiftType string  `json:"shift_type"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OfficerID) {
		errs = append(errs, validator.ValidationError{Field: "officer_id", Message: "officer_id is required"})
	}
	if r.ShiftType == "" {
		r.ShiftType = string(ShiftDay)
	}
	if !ShiftType(r.ShiftType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift_type", Message: "shift_type must be one of DAY, NIGHT, SPECIAL"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	OfficerID    string  `json:"officer_id"`
	BreakMinutes int     `json:"break_minutes"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OfficerID) {
		errs = append(errs, validator.ValidationError{Field: "officer_id", Message: "officer_id is required"})
	}
	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "break_minutes must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TimeEntryFilter struct {
	OfficerID *string
	StartDate *time.Time
	EndDate   *time.Time

	// Pagination
	Page  int
	Limit int
}

func (f *TimeEntryFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 200 {
		f.Limit = 200
	}
}

type TimeEntryResponse struct {
	ID           string                   `json:"id"`
	OfficerID    string                   `json:"officer_id"`
	ClockIn      string                   `json:"clock_in"`
	ClockOut     *string                  `json:"clock_out,omitempty"`
	ShiftType    string                   `json:"shift_type"`
	BreakMinutes int                      `json:"break_minutes"`
	HoursWorked  *float64                 `json:"hours_worked,omitempty"`
	IsOvertime   bool                     `json:"is_overtime"`
	Notes        *string                  `json:"notes,omitempty"`
	Officer      *officer.OfficerResponse `json:"officer,omitempty"`
	CreatedAt    string                   `json:"created_at"`
}

func ToResponse(e TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:           e.ID,
		OfficerID:    e.OfficerID,
		ClockIn:      e.ClockIn.Format(time.RFC3339),
		ShiftType:    string(e.ShiftType),
		BreakMinutes: e.BreakMinutes,
		HoursWorked:  e.HoursWorked,
		IsOvertime:   e.IsOvertime,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
	if e.ClockOut != nil {
		out := e.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	if e.Officer != nil {
		o := officer.ToResponse(*e.Officer)
		resp.Officer = &o
	}
	return resp
}
