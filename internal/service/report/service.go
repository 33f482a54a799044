package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/report"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
	}
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, identity user.Identity, req report.Request) (report.Document, error) {
	if err := identity.Authorize(false); err != nil {
		return report.Document{}, err
	}
	if err := req.Validate(); err != nil {
		return report.Document{}, err
	}

	start, end := req.Period(time.Now())

	var records [][]string
	var err error
	switch report.Type(req.Type) {
	case report.TypeAttendance:
		records, err = s.attendanceRecords(ctx, start, end)
	case report.TypeTimesheet:
		records, err = s.timesheetRecords(ctx, start, end)
	case report.TypeLeave:
		records, err = s.leaveRecords(ctx, start, end)
	case report.TypeOvertime:
		records, err = s.overtimeRecords(ctx, start, end)
	case report.TypeAOL:
		records, err = s.aolRecords(ctx, start, end)
	case report.TypeRoster:
		records, err = s.rosterRecords(ctx)
	}
	if err != nil {
		return report.Document{}, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return report.Document{}, fmt.Errorf("failed to write csv: %w", err)
	}

	return report.Document{
		Type:     report.Type(req.Type),
		Filename: fmt.Sprintf("report-%s-%s-%s.csv", req.Type, start.Format(dateLayout), end.Format(dateLayout)),
		Content:  buf.Bytes(),
	}, nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (s *ReportServiceImpl) attendanceRecords(ctx context.Context, start, end time.Time) ([][]string, error) {
	rows, err := s.ReportRepository.GetAttendanceRows(ctx, start, end)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Date", "Officer", "AO Number", "PC Number", "Clock In", "Clock Out", "Hours", "Station"}}
	for _, r := range rows {
		clockOut := "On duty"
		hours := ""
		if r.ClockOut != nil {
			clockOut = r.ClockOut.Format(timeLayout)
		}
		if r.Hours != nil {
			hours = formatHours(*r.Hours)
		}
		records = append(records, []string{
			r.Date.Format(dateLayout),
			r.OfficerName,
			r.AONumber,
			r.PCNumber,
			r.ClockIn.Format(timeLayout),
			clockOut,
			hours,
			r.Station,
		})
	}
	return records, nil
}

func (s *ReportServiceImpl) timesheetRecords(ctx context.Context, start, end time.Time) ([][]string, error) {
	rows, err := s.ReportRepository.GetTimesheetRows(ctx, start, end)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Officer", "AO Number", "Date", "Clock In", "Clock Out", "Hours", "Overtime"}}
	for _, r := range rows {
		records = append(records, []string{
			r.OfficerName,
			r.AONumber,
			r.Date.Format(dateLayout),
			r.ClockIn.Format(timeLayout),
			r.ClockOut.Format(timeLayout),
			formatHours(r.Hours),
			yesNo(r.IsOvertime),
		})
	}
	return records, nil
}

func (s *ReportServiceImpl) leaveRecords(ctx context.Context, start, end time.Time) ([][]string, error) {
	rows, err := s.ReportRepository.GetLeaveRows(ctx, start, end)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Officer", "AO Number", "Leave Type", "Start Date", "End Date", "Days", "Status"}}
	for _, r := range rows {
		records = append(records, []string{
			r.OfficerName,
			r.AONumber,
			r.LeaveType,
			r.StartDate.Format(dateLayout),
			r.EndDate.Format(dateLayout),
			strconv.Itoa(r.Days),
			r.Status,
		})
	}
	return records, nil
}

func (s *ReportServiceImpl) overtimeRecords(ctx context.Context, start, end time.Time) ([][]string, error) {
	rows, err := s.ReportRepository.GetOvertimeRows(ctx, start, end)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Officer", "AO Number", "Date", "Hours", "Station"}}
	for _, r := range rows {
		records = append(records, []string{
			r.OfficerName,
			r.AONumber,
			r.Date.Format(dateLayout),
			formatHours(r.Hours),
			r.Station,
		})
	}
	return records, nil
}

func (s *ReportServiceImpl) aolRecords(ctx context.Context, start, end time.Time) ([][]string, error) {
	rows, err := s.ReportRepository.GetAOLRows(ctx, start, end)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Officer", "AO Number", "Start Date", "End Date", "Days", "Station"}}
	for _, r := range rows {
		records = append(records, []string{
			r.OfficerName,
			r.AONumber,
			r.StartDate.Format(dateLayout),
			r.EndDate.Format(dateLayout),
			strconv.Itoa(r.Days),
			r.Station,
		})
	}
	return records, nil
}

func (s *ReportServiceImpl) rosterRecords(ctx context.Context) ([][]string, error) {
	rows, err := s.ReportRepository.GetRosterRows(ctx)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Station", "Officer", "AO Number", "PC Number", "Rank"}}
	for _, r := range rows {
		records = append(records, []string{
			r.Station,
			r.OfficerName,
			r.AONumber,
			r.PCNumber,
			r.Rank,
		})
	}
	return records, nil
}
