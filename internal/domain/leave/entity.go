package leave

import (
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
)

type Type string

const (
	TypeAnnual        Type = "ANL"
	TypeSick          Type = "SICK"
	TypeAOL           Type = "AOL" // absence without leave
	TypeFamily        Type = "FR"
	TypeTraining      Type = "TRN"
	TypeCompassionate Type = "COMP"
	TypeMaternity     Type = "MAT"
	TypeSuspension    Type = "SUS"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAnnual, TypeSick, TypeAOL, TypeFamily, TypeTraining, TypeCompassionate, TypeMaternity, TypeSuspension:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"

	// StatusCancelled is declared in the domain but no operation
	// transitions into it; it is reserved for a future officer-initiated
	// cancellation flow.
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Leave is one leave application. Status moves PENDING -> APPROVED or
// PENDING -> REJECTED exactly once; a non-PENDING leave is immutable.
type Leave struct {
	ID              string
	OfficerID       string
	LeaveType       Type
	StartDate       time.Time
	EndDate         time.Time
	DaysRequested   int
	DaysApproved    *int
	Status          Status
	Reason          *string
	RejectionReason *string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined officer data for listings
	Officer *officer.Officer
}
