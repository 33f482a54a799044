package officer

import "time"

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusRetired   Status = "RETIRED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusRetired:
		return true
	}
	return false
}

// Default leave entitlements granted to a newly created officer.
const (
	DefaultAnnualLeaveEntitlement = 21
	DefaultSickLeaveEntitlement   = 30
)

type Officer struct {
	ID            string
	AONumber      string
	PCNumber      string
	FirstName     string
	LastName      string
	Rank          string
	Station       string
	ContactNumber *string
	Email         *string
	DateOfJoining time.Time
	Status        Status

	// Leave balances. taken <= entitlement is enforced at approval time
	// only, not as a database constraint.
	AnnualLeaveEntitlement int
	AnnualLeaveTaken       int
	SickLeaveEntitlement   int
	SickLeaveTaken         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Officer) FullName() string {
	return o.FirstName + " " + o.LastName
}

// AnnualLeaveRemaining is the balance derived from entitlement minus taken.
func (o Officer) AnnualLeaveRemaining() int {
	return o.AnnualLeaveEntitlement - o.AnnualLeaveTaken
}

func (o Officer) SickLeaveRemaining() int {
	return o.SickLeaveEntitlement - o.SickLeaveTaken
}
