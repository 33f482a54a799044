package attendance

import (
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
)

type ShiftType string

const (
	ShiftDay     ShiftType = "DAY"
	ShiftNight   ShiftType = "NIGHT"
	ShiftSpecial ShiftType = "SPECIAL"
)

func (s ShiftType) Valid() bool {
	switch s {
	case ShiftDay, ShiftNight, ShiftSpecial:
		return true
	}
	return false
}

// TimeEntry is one attendance record. ClockOut is nil while the officer is
// still on duty; HoursWorked and IsOvertime stay unset until clock-out.
// Entries are created at clock-in, mutated exactly once at clock-out and
// never deleted.
type TimeEntry struct {
	ID           string
	OfficerID    string
	ClockIn      time.Time
	ClockOut     *time.Time
	ShiftType    ShiftType
	BreakMinutes int
	HoursWorked  *float64
	IsOvertime   bool
	Notes        *string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined officer data for listings
	Officer *officer.Officer
}

func (e TimeEntry) Open() bool {
	return e.ClockOut == nil
}
