package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/report"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepository struct {
	attendance []report.AttendanceRow
	timesheet  []report.TimesheetRow
	leaves     []report.LeaveRow
	overtime   []report.OvertimeRow
	aol        []report.AOLRow
	roster     []report.RosterRow
}

func (f *fakeReportRepository) GetAttendanceRows(ctx context.Context, start, end time.Time) ([]report.AttendanceRow, error) {
	return f.attendance, nil
}

func (f *fakeReportRepository) GetTimesheetRows(ctx context.Context, start, end time.Time) ([]report.TimesheetRow, error) {
	return f.timesheet, nil
}

func (f *fakeReportRepository) GetLeaveRows(ctx context.Context, start, end time.Time) ([]report.LeaveRow, error) {
	return f.leaves, nil
}

func (f *fakeReportRepository) GetOvertimeRows(ctx context.Context, start, end time.Time) ([]report.OvertimeRow, error) {
	return f.overtime, nil
}

func (f *fakeReportRepository) GetAOLRows(ctx context.Context, start, end time.Time) ([]report.AOLRow, error) {
	return f.aol, nil
}

func (f *fakeReportRepository) GetRosterRows(ctx context.Context) ([]report.RosterRow, error) {
	return f.roster, nil
}

var hrIdentity = user.Identity{UserID: "hr-user", Role: user.RoleHRAdmin}

func mustTime(t *testing.T, value string) time.Time {
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)
	return parsed
}

func TestReportService_AttendanceCSV(t *testing.T) {
	hours := 8.0
	clockOut := mustTime(t, "2024-06-03 16:30")
	repo := &fakeReportRepository{
		attendance: []report.AttendanceRow{
			{
				Date:        mustTime(t, "2024-06-03 08:00"),
				OfficerName: "John Dlamini",
				AONumber:    "AO001234",
				PCNumber:    "PC567890",
				ClockIn:     mustTime(t, "2024-06-03 08:00"),
				ClockOut:    &clockOut,
				Hours:       &hours,
				Station:     "Durban Central",
			},
			{
				Date:        mustTime(t, "2024-06-03 07:45"),
				OfficerName: "Thandi Nkosi",
				AONumber:    "AO001235",
				PCNumber:    "PC567891",
				ClockIn:     mustTime(t, "2024-06-03 07:45"),
				Station:     "Mayville",
			},
		},
	}
	svc := NewReportService(repo)

	doc, err := svc.Generate(context.Background(), hrIdentity, report.Request{
		Type:  "attendance",
		Start: "2024-06-03",
		End:   "2024-06-03",
	})
	require.NoError(t, err)

	assert.Equal(t, "report-attendance-2024-06-03-2024-06-03.csv", doc.Filename)

	lines := strings.Split(strings.TrimRight(string(doc.Content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Officer,AO Number,PC Number,Clock In,Clock Out,Hours,Station", lines[0])
	assert.Equal(t, "2024-06-03,John Dlamini,AO001234,PC567890,08:00,16:30,8.00,Durban Central", lines[1])
	// Still-open entries render "On duty" with no hours.
	assert.Equal(t, "2024-06-03,Thandi Nkosi,AO001235,PC567891,07:45,On duty,,Mayville", lines[2])
}

func TestReportService_TimesheetCSV(t *testing.T) {
	repo := &fakeReportRepository{
		timesheet: []report.TimesheetRow{
			{
				OfficerName: "John Dlamini",
				AONumber:    "AO001234",
				Date:        mustTime(t, "2024-06-03 08:00"),
				ClockIn:     mustTime(t, "2024-06-03 08:00"),
				ClockOut:    mustTime(t, "2024-06-03 18:00"),
				Hours:       10.0,
				IsOvertime:  true,
			},
		},
	}
	svc := NewReportService(repo)

	doc, err := svc.Generate(context.Background(), hrIdentity, report.Request{Type: "timesheet"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(doc.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Officer,AO Number,Date,Clock In,Clock Out,Hours,Overtime", lines[0])
	assert.Equal(t, "John Dlamini,AO001234,2024-06-03,08:00,18:00,10.00,Yes", lines[1])
}

func TestReportService_LeaveCSV(t *testing.T) {
	repo := &fakeReportRepository{
		leaves: []report.LeaveRow{
			{
				OfficerName: "Thandi Nkosi",
				AONumber:    "AO001235",
				LeaveType:   "ANL",
				StartDate:   mustTime(t, "2024-06-03 00:00"),
				EndDate:     mustTime(t, "2024-06-07 00:00"),
				Days:        5,
				Status:      "APPROVED",
			},
		},
	}
	svc := NewReportService(repo)

	doc, err := svc.Generate(context.Background(), hrIdentity, report.Request{Type: "leave"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(doc.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Officer,AO Number,Leave Type,Start Date,End Date,Days,Status", lines[0])
	assert.Equal(t, "Thandi Nkosi,AO001235,ANL,2024-06-03,2024-06-07,5,APPROVED", lines[1])
}

func TestReportService_RosterCSV(t *testing.T) {
	repo := &fakeReportRepository{
		roster: []report.RosterRow{
			{Station: "Durban Central", OfficerName: "John Dlamini", AONumber: "AO001234", PCNumber: "PC567890", Rank: "Constable"},
			{Station: "Mayville", OfficerName: "Thandi Nkosi", AONumber: "AO001235", PCNumber: "PC567891", Rank: "Sergeant"},
		},
	}
	svc := NewReportService(repo)

	doc, err := svc.Generate(context.Background(), hrIdentity, report.Request{Type: "roster"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(doc.Content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Station,Officer,AO Number,PC Number,Rank", lines[0])
}

func TestReportService_EmptyResultStillHasHeader(t *testing.T) {
	svc := NewReportService(&fakeReportRepository{})

	doc, err := svc.Generate(context.Background(), hrIdentity, report.Request{Type: "overtime"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(doc.Content), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "Officer,AO Number,Date,Hours,Station", lines[0])
}

func TestReportService_UnknownTypeRejected(t *testing.T) {
	svc := NewReportService(&fakeReportRepository{})

	_, err := svc.Generate(context.Background(), hrIdentity, report.Request{Type: "payroll"})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestReportService_DefaultTypeIsAttendance(t *testing.T) {
	svc := NewReportService(&fakeReportRepository{})

	doc, err := svc.Generate(context.Background(), hrIdentity, report.Request{})
	require.NoError(t, err)
	assert.Equal(t, report.TypeAttendance, doc.Type)
}

func TestReportService_RequiresAuthentication(t *testing.T) {
	svc := NewReportService(&fakeReportRepository{})

	_, err := svc.Generate(context.Background(), user.Identity{}, report.Request{Type: "roster"})
	assert.ErrorIs(t, err, user.ErrUnauthenticated)
}
