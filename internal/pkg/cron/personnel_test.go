package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/config"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/dashboard"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/leave"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepository struct {
	leave.LeaveRepository
	pending []leave.Leave
	err     error
}

func (f *fakeLeaveRepository) ListPending(ctx context.Context) ([]leave.Leave, error) {
	return f.pending, f.err
}

type fakeTimeEntryRepository struct {
	attendance.TimeEntryRepository
	closed int64
	err    error
	cutoff time.Time
}

func (f *fakeTimeEntryRepository) CloseStaleOpenEntries(ctx context.Context, openedBefore time.Time) (int64, error) {
	f.cutoff = openedBefore
	return f.closed, f.err
}

type fakeDashboardRepository struct {
	dashboard.DashboardRepository
	stats dashboard.Stats
}

func (f *fakeDashboardRepository) GetStats(ctx context.Context, dayStart time.Time) (dashboard.Stats, error) {
	return f.stats, nil
}

type fakeEmailService struct {
	aolTo       string
	aolOfficers []email.AOLOfficer
	summaryTo   string
	summary     email.DailySummaryData
}

func (f *fakeEmailService) SendAOLAlert(to string, officers []email.AOLOfficer) error {
	f.aolTo = to
	f.aolOfficers = officers
	return nil
}

func (f *fakeEmailService) SendDailySummary(to string, data email.DailySummaryData) error {
	f.summaryTo = to
	f.summary = data
	return nil
}

func testJobsConfig() config.JobsConfig {
	return config.JobsConfig{
		Enabled:             true,
		AOLCheckInterval:    time.Hour,
		DailyReportInterval: time.Hour,
		StaleSweepInterval:  time.Hour,
	}
}

func pendingAOL() leave.Leave {
	return leave.Leave{
		LeaveType:     leave.TypeAOL,
		StartDate:     time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		DaysRequested: 3,
		Officer: &officer.Officer{
			FirstName: "Sipho",
			LastName:  "Ndlovu",
			AONumber:  "AO000111",
			Station:   "Umlazi",
		},
	}
}

func TestPersonnelJobs_CheckAOL_OnlyAOLWithOfficer(t *testing.T) {
	leaveRepo := &fakeLeaveRepository{pending: []leave.Leave{
		pendingAOL(),
		{LeaveType: leave.TypeAOL}, // no officer joined
		{LeaveType: leave.TypeAnnual, Officer: &officer.Officer{FirstName: "Jane"}},
	}}
	emails := &fakeEmailService{}
	jobs := NewPersonnelJobs(leaveRepo, &fakeTimeEntryRepository{}, &fakeDashboardRepository{}, emails, testJobsConfig(), "hr@metro-pts.gov.za")

	require.NoError(t, jobs.CheckAOL(context.Background()))
	require.Len(t, emails.aolOfficers, 1)
	assert.Equal(t, "Sipho Ndlovu", emails.aolOfficers[0].Name)
	assert.Equal(t, "AO000111", emails.aolOfficers[0].AONumber)
	assert.Equal(t, "2024-06-03", emails.aolOfficers[0].StartDate)
}

func TestPersonnelJobs_SkipWithoutAlertAddress(t *testing.T) {
	leaveRepo := &fakeLeaveRepository{pending: []leave.Leave{pendingAOL()}}
	emails := &fakeEmailService{}
	jobs := NewPersonnelJobs(leaveRepo, &fakeTimeEntryRepository{}, &fakeDashboardRepository{}, emails, testJobsConfig(), "")

	require.NoError(t, jobs.CheckAOL(context.Background()))
	require.NoError(t, jobs.SendDailySummary(context.Background()))
	assert.Empty(t, emails.aolTo)
	assert.Empty(t, emails.summaryTo)
}

func TestPersonnelJobs_RunOnce(t *testing.T) {
	leaveRepo := &fakeLeaveRepository{pending: []leave.Leave{pendingAOL()}}
	timeRepo := &fakeTimeEntryRepository{closed: 2}
	dashRepo := &fakeDashboardRepository{stats: dashboard.Stats{
		TotalActiveOfficers: 40,
		ClockedInToday:      31,
		OnDutyNow:           12,
		PendingLeaves:       4,
	}}
	emails := &fakeEmailService{}

	jobs := NewPersonnelJobs(leaveRepo, timeRepo, dashRepo, emails, testJobsConfig(), "hr@metro-pts.gov.za")
	s := NewScheduler()
	jobs.RegisterJobs(s)

	require.NoError(t, s.RunOnce(context.Background()))

	assert.Equal(t, "hr@metro-pts.gov.za", emails.aolTo)
	assert.Len(t, emails.aolOfficers, 1)
	assert.Equal(t, "hr@metro-pts.gov.za", emails.summaryTo)
	assert.Equal(t, int64(12), emails.summary.StillOnDuty)
	// The sweep cuts off a full day back so overnight shifts survive.
	assert.WithinDuration(t, time.Now().Add(-staleOpenEntryAge), timeRepo.cutoff, time.Minute)
}

func TestPersonnelJobs_RunOnce_ReportsSweepFailure(t *testing.T) {
	boom := errors.New("connection reset")
	timeRepo := &fakeTimeEntryRepository{err: boom}
	emails := &fakeEmailService{}

	// No alert address: the mail jobs no-op, only the sweep does work.
	jobs := NewPersonnelJobs(&fakeLeaveRepository{}, timeRepo, &fakeDashboardRepository{}, emails, testJobsConfig(), "")
	s := NewScheduler()
	jobs.RegisterJobs(s)

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stale_entry_sweep")
}
