package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/attendance"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/worktime"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) attendance.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// CreateIfNoOpenEntry implements attendance.TimeEntryRepository.
//
// The insert carries its own duplicate-open-entry guard so two concurrent
// clock-ins for the same officer cannot both succeed; the partial unique
// index on (officer_id) WHERE clock_out IS NULL backs it up.
func (r *timeEntryRepository) CreateIfNoOpenEntry(ctx context.Context, entry attendance.TimeEntry, dayStart time.Time) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (officer_id, clock_in, shift_type, notes, created_by)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM time_entries
			WHERE officer_id = $1
			  AND clock_in >= $6
			  AND clock_out IS NULL
		)
		RETURNING id, break_minutes, is_overtime, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.OfficerID, entry.ClockIn, entry.ShiftType, entry.Notes, entry.CreatedBy, dayStart,
	).Scan(&entry.ID, &entry.BreakMinutes, &entry.IsOvertime, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		// No row returned means the guard suppressed the insert; a unique
		// violation means we lost the race to the partial index instead.
		if err == pgx.ErrNoRows || isUniqueViolation(err) {
			return attendance.TimeEntry{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetOpenEntry implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) GetOpenEntry(ctx context.Context, officerID string, dayStart time.Time) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, officer_id, clock_in, clock_out, shift_type, break_minutes,
			   hours_worked, is_overtime, notes, created_by, created_at, updated_at
		FROM time_entries
		WHERE officer_id = $1
		  AND clock_in >= $2
		  AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var e attendance.TimeEntry
	err := q.QueryRow(ctx, query, officerID, dayStart).Scan(
		&e.ID, &e.OfficerID, &e.ClockIn, &e.ClockOut, &e.ShiftType, &e.BreakMinutes,
		&e.HoursWorked, &e.IsOvertime, &e.Notes, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.TimeEntry{}, attendance.ErrNoOpenEntry
		}
		return attendance.TimeEntry{}, fmt.Errorf("failed to get open entry: %w", err)
	}

	return e, nil
}

// CloseEntry implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) CloseEntry(ctx context.Context, entry attendance.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_out = $1, hours_worked = $2, is_overtime = $3,
			break_minutes = $4, notes = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		entry.ClockOut, entry.HoursWorked, entry.IsOvertime,
		entry.BreakMinutes, entry.Notes, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to close time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEntryNotFound
	}

	return nil
}

// CloseStaleOpenEntries implements attendance.TimeEntryRepository.
//
// Clock-out only considers entries opened today, so an entry left open
// past midnight can never be closed through it, yet its row keeps the
// partial unique index rejecting all later clock-ins. The sweep stamps
// a standard shift on those rows and frees the officer.
func (r *timeEntryRepository) CloseStaleOpenEntries(ctx context.Context, openedBefore time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_out = clock_in + make_interval(secs => $2),
			hours_worked = $3,
			notes = CASE WHEN notes IS NULL OR notes = ''
				THEN $4
				ELSE notes || E'\n' || $4 END,
			updated_at = NOW()
		WHERE clock_out IS NULL
		  AND clock_in < $1
	`

	tag, err := q.Exec(ctx, query,
		openedBefore,
		worktime.OvertimeThresholdHours*3600,
		worktime.OvertimeThresholdHours,
		"Auto-closed: no clock-out recorded",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to close stale time entries: %w", err)
	}

	return tag.RowsAffected(), nil
}

const timeEntryJoinColumns = `
	t.id, t.officer_id, t.clock_in, t.clock_out, t.shift_type, t.break_minutes,
	t.hours_worked, t.is_overtime, t.notes, t.created_by, t.created_at, t.updated_at,
	o.id, o.ao_number, o.pc_number, o.first_name, o.last_name, o.rank, o.station,
	o.contact_number, o.email, o.date_of_joining, o.status,
	o.annual_leave_entitlement, o.annual_leave_taken,
	o.sick_leave_entitlement, o.sick_leave_taken,
	o.created_at, o.updated_at`

func scanTimeEntryWithOfficer(rows pgx.Rows) (attendance.TimeEntry, error) {
	var e attendance.TimeEntry
	var o officer.Officer
	err := rows.Scan(
		&e.ID, &e.OfficerID, &e.ClockIn, &e.ClockOut, &e.ShiftType, &e.BreakMinutes,
		&e.HoursWorked, &e.IsOvertime, &e.Notes, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		&o.ID, &o.AONumber, &o.PCNumber, &o.FirstName, &o.LastName, &o.Rank, &o.Station,
		&o.ContactNumber, &o.Email, &o.DateOfJoining, &o.Status,
		&o.AnnualLeaveEntitlement, &o.AnnualLeaveTaken,
		&o.SickLeaveEntitlement, &o.SickLeaveTaken,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return attendance.TimeEntry{}, err
	}
	e.Officer = &o
	return e, nil
}

// ListOnDuty implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) ListOnDuty(ctx context.Context, dayStart time.Time) ([]attendance.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_entries t
		JOIN officers o ON o.id = t.officer_id
		WHERE t.clock_in >= $1
		  AND t.clock_out IS NULL
		ORDER BY t.clock_in ASC
	`, timeEntryJoinColumns)

	rows, err := q.Query(ctx, query, dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list on-duty entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntryWithOfficer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// List implements attendance.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, filter attendance.TimeEntryFilter) ([]attendance.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.OfficerID != nil && *filter.OfficerID != "" {
		conditions = append(conditions, fmt.Sprintf("t.officer_id = $%d", argIdx))
		args = append(args, *filter.OfficerID)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.clock_in >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("t.clock_in <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM time_entries t WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM time_entries t
		JOIN officers o ON o.id = t.officer_id
		WHERE %s
		ORDER BY t.clock_in DESC
		LIMIT $%d OFFSET $%d
	`, timeEntryJoinColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntryWithOfficer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read time entries: %w", err)
	}

	return entries, total, nil
}
