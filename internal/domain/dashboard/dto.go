package dashboard

import (
	"context"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
)

type Stats struct {
	TotalActiveOfficers int64 `json:"total_active_officers"`
	ClockedInToday      int64 `json:"clocked_in_today"`
	OnDutyNow           int64 `json:"on_duty_now"`
	PendingLeaves       int64 `json:"pending_leaves"`
	AOLAlerts           int64 `json:"aol_alerts"`
}

type StatsResponse struct {
	Stats  Stats                          `json:"stats"`
	OnDuty []attendance.TimeEntryResponse `json:"on_duty"`
}

// DashboardRepository aggregates the landing-page counters in one place.
type DashboardRepository interface {
	// GetStats computes the counters relative to dayStart (midnight today).
	GetStats(ctx context.Context, dayStart time.Time) (Stats, error)
}
