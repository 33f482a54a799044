package dashboard

import (
	"context"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
)

type DashboardService interface {
	// GetStats returns the landing-page counters plus the current on-duty
	// list.
	GetStats(ctx context.Context, identity user.Identity) (StatsResponse, error)
}
