package leave

import (
	"context"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
)

type LeaveService interface {
	// Apply files a leave application in PENDING state. Annual and sick
	// leave are checked against the officer's remaining balance.
	Apply(ctx context.Context, identity user.Identity, req ApplyRequest) (LeaveResponse, error)

	// Decide approves or rejects a pending application. Approval of
	// annual or sick leave credits the officer's taken counter in the
	// same transaction as the status flip.
	Decide(ctx context.Context, identity user.Identity, leaveID string, req DecideRequest) (LeaveResponse, error)

	Get(ctx context.Context, identity user.Identity, leaveID string) (LeaveResponse, error)

	ListPending(ctx context.Context, identity user.Identity) ([]LeaveResponse, error)

	List(ctx context.Context, identity user.Identity, filter LeaveFilter) ([]LeaveResponse, error)
}
