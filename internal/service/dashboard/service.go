package dashboard

import (
	"context"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/dashboard"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/worktime"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	attendance.TimeEntryRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, timeEntryRepo attendance.TimeEntryRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		TimeEntryRepository: timeEntryRepo,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context, identity user.Identity) (dashboard.StatsResponse, error) {
	if err := identity.Authorize(false); err != nil {
		return dashboard.StatsResponse{}, err
	}

	dayStart := worktime.StartOfDay(time.Now())

	stats, err := s.DashboardRepository.GetStats(ctx, dayStart)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	entries, err := s.TimeEntryRepository.ListOnDuty(ctx, dayStart)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	onDuty := make([]attendance.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		onDuty = append(onDuty, attendance.ToResponse(e))
	}

	return dashboard.StatsResponse{
		Stats:  stats,
		OnDuty: onDuty,
	}, nil
}
