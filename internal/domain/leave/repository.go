package leave

import "context"

// LeaveRepository defines data access for leave applications.
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)

	GetByID(ctx context.Context, id string) (Leave, error)

	// UpdateDecision writes the approve/reject mutation: status,
	// days_approved, approver, timestamp and rejection reason. Runs inside
	// the decision transaction.
	UpdateDecision(ctx context.Context, l Leave) error

	ListPending(ctx context.Context) ([]Leave, error)

	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
}
