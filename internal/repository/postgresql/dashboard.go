package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/dashboard"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetStats implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetStats(ctx context.Context, dayStart time.Time) (dashboard.Stats, error) {
	q := GetQuerier(ctx, r.db)

	var stats dashboard.Stats
	err := q.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM officers WHERE status = 'ACTIVE'),
			(SELECT COUNT(*) FROM time_entries WHERE clock_in >= $1),
			(SELECT COUNT(*) FROM time_entries WHERE clock_in >= $1 AND clock_out IS NULL),
			(SELECT COUNT(*) FROM leaves WHERE status = 'PENDING'),
			(SELECT COUNT(*) FROM leaves WHERE leave_type = 'AOL' AND status = 'PENDING')
	`, dayStart).Scan(
		&stats.TotalActiveOfficers,
		&stats.ClockedInToday,
		&stats.OnDutyNow,
		&stats.PendingLeaves,
		&stats.AOLAlerts,
	)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}
