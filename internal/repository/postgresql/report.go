package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/report"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetAttendanceRows implements report.ReportRepository.
func (r *reportRepository) GetAttendanceRows(ctx context.Context, start, end time.Time) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.clock_in, o.first_name || ' ' || o.last_name, o.ao_number, o.pc_number,
			   t.clock_in, t.clock_out, t.hours_worked, o.station
		FROM time_entries t
		JOIN officers o ON o.id = t.officer_id
		WHERE t.clock_in >= $1 AND t.clock_in <= $2
		ORDER BY t.clock_in ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance rows: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		if err := rows.Scan(&row.Date, &row.OfficerName, &row.AONumber, &row.PCNumber,
			&row.ClockIn, &row.ClockOut, &row.Hours, &row.Station); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetTimesheetRows implements report.ReportRepository.
func (r *reportRepository) GetTimesheetRows(ctx context.Context, start, end time.Time) ([]report.TimesheetRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.first_name || ' ' || o.last_name, o.ao_number, t.clock_in,
			   t.clock_in, t.clock_out, COALESCE(t.hours_worked, 0), t.is_overtime
		FROM time_entries t
		JOIN officers o ON o.id = t.officer_id
		WHERE t.clock_in >= $1 AND t.clock_in <= $2
		  AND t.clock_out IS NOT NULL
		ORDER BY t.clock_in ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheet rows: %w", err)
	}
	defer rows.Close()

	var result []report.TimesheetRow
	for rows.Next() {
		var row report.TimesheetRow
		if err := rows.Scan(&row.OfficerName, &row.AONumber, &row.Date,
			&row.ClockIn, &row.ClockOut, &row.Hours, &row.IsOvertime); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetLeaveRows implements report.ReportRepository.
func (r *reportRepository) GetLeaveRows(ctx context.Context, start, end time.Time) ([]report.LeaveRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.first_name || ' ' || o.last_name, o.ao_number, l.leave_type,
			   l.start_date, l.end_date, l.days_requested, l.status
		FROM leaves l
		JOIN officers o ON o.id = l.officer_id
		WHERE l.start_date <= $2 AND l.end_date >= $1
		ORDER BY l.start_date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave rows: %w", err)
	}
	defer rows.Close()

	var result []report.LeaveRow
	for rows.Next() {
		var row report.LeaveRow
		if err := rows.Scan(&row.OfficerName, &row.AONumber, &row.LeaveType,
			&row.StartDate, &row.EndDate, &row.Days, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetOvertimeRows implements report.ReportRepository.
func (r *reportRepository) GetOvertimeRows(ctx context.Context, start, end time.Time) ([]report.OvertimeRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.first_name || ' ' || o.last_name, o.ao_number, t.clock_in,
			   COALESCE(t.hours_worked, 0), o.station
		FROM time_entries t
		JOIN officers o ON o.id = t.officer_id
		WHERE t.clock_in >= $1 AND t.clock_in <= $2
		  AND t.is_overtime = TRUE
		ORDER BY t.clock_in ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime rows: %w", err)
	}
	defer rows.Close()

	var result []report.OvertimeRow
	for rows.Next() {
		var row report.OvertimeRow
		if err := rows.Scan(&row.OfficerName, &row.AONumber, &row.Date, &row.Hours, &row.Station); err != nil {
			return nil, fmt.Errorf("failed to scan overtime row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetAOLRows implements report.ReportRepository.
func (r *reportRepository) GetAOLRows(ctx context.Context, start, end time.Time) ([]report.AOLRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.first_name || ' ' || o.last_name, o.ao_number,
			   l.start_date, l.end_date, l.days_requested, o.station
		FROM leaves l
		JOIN officers o ON o.id = l.officer_id
		WHERE l.leave_type = 'AOL'
		  AND l.start_date >= $1 AND l.start_date <= $2
		ORDER BY l.start_date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query AOL rows: %w", err)
	}
	defer rows.Close()

	var result []report.AOLRow
	for rows.Next() {
		var row report.AOLRow
		if err := rows.Scan(&row.OfficerName, &row.AONumber,
			&row.StartDate, &row.EndDate, &row.Days, &row.Station); err != nil {
			return nil, fmt.Errorf("failed to scan AOL row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetRosterRows implements report.ReportRepository.
func (r *reportRepository) GetRosterRows(ctx context.Context) ([]report.RosterRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.station, o.first_name || ' ' || o.last_name, o.ao_number, o.pc_number, o.rank
		FROM officers o
		WHERE o.status = 'ACTIVE'
		ORDER BY o.station ASC, o.last_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster rows: %w", err)
	}
	defer rows.Close()

	var result []report.RosterRow
	for rows.Next() {
		var row report.RosterRow
		if err := rows.Scan(&row.Station, &row.OfficerName, &row.AONumber, &row.PCNumber, &row.Rank); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
