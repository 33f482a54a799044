package officer

import "context"

// OfficerRepository defines data access for officer records.
type OfficerRepository interface {
	Create(ctx context.Context, o Officer) (Officer, error)

	GetByID(ctx context.Context, id string) (Officer, error)

	// ExistsByNumbers reports whether another officer already carries the
	// given AO or PC number. excludeID skips the officer being updated.
	ExistsByNumbers(ctx context.Context, aoNumber, pcNumber string, excludeID *string) (bool, error)

	List(ctx context.Context, filter OfficerFilter) ([]Officer, int64, error)

	Update(ctx context.Context, id string, req UpdateOfficerRequest) error

	// SetStatus performs the soft-delete status flip.
	SetStatus(ctx context.Context, id string, status Status) error

	// IncrementLeaveTaken adds days to the annual or sick taken counter.
	// Runs inside the leave-approval transaction.
	IncrementLeaveTaken(ctx context.Context, id string, category LeaveCategory, days int) error

	// ListStations returns the distinct station names of ACTIVE officers.
	ListStations(ctx context.Context) ([]string, error)
}

// LeaveCategory selects which balance pair IncrementLeaveTaken touches.
type LeaveCategory string

const (
	CategoryAnnual LeaveCategory = "ANNUAL"
	CategorySick   LeaveCategory = "SICK"
)
