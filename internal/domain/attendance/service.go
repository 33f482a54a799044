package attendance

import (
	"context"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
)

type AttendanceService interface {
	// ClockIn opens a time entry for the officer. Fails with
	// ErrAlreadyClockedIn when an open entry already exists today.
	ClockIn(ctx context.Context, identity user.Identity, req ClockInRequest) (TimeEntryResponse, error)

	// ClockOut closes today's open entry, computing hours worked and the
	// overtime flag.
	ClockOut(ctx context.Context, identity user.Identity, req ClockOutRequest) (TimeEntryResponse, error)

	// ListOnDuty returns officers currently clocked in today.
	ListOnDuty(ctx context.Context, identity user.Identity) ([]TimeEntryResponse, error)

	List(ctx context.Context, identity user.Identity, filter TimeEntryFilter) ([]TimeEntryResponse, int64, error)
}
