package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/config"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/dashboard"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/leave"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/email"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/worktime"
)

// staleOpenEntryAge is how long a time entry may stay open before the
// sweep closes it. Longer than any shift, including overnight ones.
const staleOpenEntryAge = 24 * time.Hour

// PersonnelJobs bundles the recurring HR jobs: the AOL alert sweep,
// the end-of-day attendance summary, and the stale open-entry sweep.
type PersonnelJobs struct {
	leaveRepo     leave.LeaveRepository
	timeEntryRepo attendance.TimeEntryRepository
	dashboardRepo dashboard.DashboardRepository
	emailService  email.EmailService
	cfg           config.JobsConfig
	alertsTo      string
}

func NewPersonnelJobs(
	leaveRepo leave.LeaveRepository,
	timeEntryRepo attendance.TimeEntryRepository,
	dashboardRepo dashboard.DashboardRepository,
	emailService email.EmailService,
	cfg config.JobsConfig,
	alertsTo string,
) *PersonnelJobs {
	return &PersonnelJobs{
		leaveRepo:     leaveRepo,
		timeEntryRepo: timeEntryRepo,
		dashboardRepo: dashboardRepo,
		emailService:  emailService,
		cfg:           cfg,
		alertsTo:      alertsTo,
	}
}

func (j *PersonnelJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("aol_check", j.cfg.AOLCheckInterval, j.CheckAOL)
	scheduler.AddJob("daily_summary", j.cfg.DailyReportInterval, j.SendDailySummary)
	scheduler.AddJob("stale_entry_sweep", j.cfg.StaleSweepInterval, j.CloseStaleEntries)
}

// CloseStaleEntries closes time entries left open past the stale cutoff
// so the affected officers can clock in again.
func (j *PersonnelJobs) CloseStaleEntries(ctx context.Context) error {
	closed, err := j.timeEntryRepo.CloseStaleOpenEntries(ctx, time.Now().Add(-staleOpenEntryAge))
	if err != nil {
		return fmt.Errorf("failed to close stale time entries: %w", err)
	}
	if closed > 0 {
		slog.Warn("Cron: auto-closed stale open time entries", "count", closed)
	}
	return nil
}

// CheckAOL mails HR a list of officers with pending AOL records.
func (j *PersonnelJobs) CheckAOL(ctx context.Context) error {
	if j.alertsTo == "" {
		slog.Debug("Cron: no HR alert address configured, skipping AOL check")
		return nil
	}

	pending, err := j.leaveRepo.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending leaves: %w", err)
	}

	var officers []email.AOLOfficer
	for _, l := range pending {
		if l.LeaveType != leave.TypeAOL || l.Officer == nil {
			continue
		}
		officers = append(officers, email.AOLOfficer{
			Name:      l.Officer.FullName(),
			AONumber:  l.Officer.AONumber,
			Station:   l.Officer.Station,
			StartDate: l.StartDate.Format("2006-01-02"),
			Days:      l.DaysRequested,
		})
	}

	if len(officers) == 0 {
		slog.Info("Cron: no pending AOL records found")
		return nil
	}

	return j.emailService.SendAOLAlert(j.alertsTo, officers)
}

// SendDailySummary mails the end-of-day attendance counters to HR.
func (j *PersonnelJobs) SendDailySummary(ctx context.Context) error {
	if j.alertsTo == "" {
		slog.Debug("Cron: no HR alert address configured, skipping daily summary")
		return nil
	}

	now := time.Now()
	stats, err := j.dashboardRepo.GetStats(ctx, worktime.StartOfDay(now))
	if err != nil {
		return fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return j.emailService.SendDailySummary(j.alertsTo, email.DailySummaryData{
		Date:           now.Format("2006-01-02"),
		ClockedIn:      stats.ClockedInToday,
		StillOnDuty:    stats.OnDutyNow,
		PendingLeaves:  stats.PendingLeaves,
		ActiveOfficers: stats.TotalActiveOfficers,
	})
}
