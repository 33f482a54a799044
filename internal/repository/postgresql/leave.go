package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/leave"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (officer_id, leave_type, start_date, end_date, days_requested, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.OfficerID, l.LeaveType, l.StartDate, l.EndDate, l.DaysRequested, l.Reason, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, officer_id, leave_type, start_date, end_date, days_requested,
			   days_approved, status, reason, rejection_reason, approved_by,
			   approved_at, created_at, updated_at
		FROM leaves
		WHERE id = $1
	`

	var l leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.OfficerID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.DaysRequested,
		&l.DaysApproved, &l.Status, &l.Reason, &l.RejectionReason, &l.ApprovedBy,
		&l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave by ID: %w", err)
	}

	return l, nil
}

// UpdateDecision implements leave.LeaveRepository.
func (r *leaveRepository) UpdateDecision(ctx context.Context, l leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, days_approved = $2, rejection_reason = $3,
			approved_by = $4, approved_at = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		l.Status, l.DaysApproved, l.RejectionReason, l.ApprovedBy, l.ApprovedAt, l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

const leaveJoinColumns = `
	l.id, l.officer_id, l.leave_type, l.start_date, l.end_date, l.days_requested,
	l.days_approved, l.status, l.reason, l.rejection_reason, l.approved_by,
	l.approved_at, l.created_at, l.updated_at,
	o.id, o.ao_number, o.pc_number, o.first_name, o.last_name, o.rank, o.station,
	o.contact_number, o.email, o.date_of_joining, o.status,
	o.annual_leave_entitlement, o.annual_leave_taken,
	o.sick_leave_entitlement, o.sick_leave_taken,
	o.created_at, o.updated_at`

func scanLeaveWithOfficer(rows pgx.Rows) (leave.Leave, error) {
	var l leave.Leave
	var o officer.Officer
	err := rows.Scan(
		&l.ID, &l.OfficerID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.DaysRequested,
		&l.DaysApproved, &l.Status, &l.Reason, &l.RejectionReason, &l.ApprovedBy,
		&l.ApprovedAt, &l.CreatedAt, &l.UpdatedAt,
		&o.ID, &o.AONumber, &o.PCNumber, &o.FirstName, &o.LastName, &o.Rank, &o.Station,
		&o.ContactNumber, &o.Email, &o.DateOfJoining, &o.Status,
		&o.AnnualLeaveEntitlement, &o.AnnualLeaveTaken,
		&o.SickLeaveEntitlement, &o.SickLeaveTaken,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, err
	}
	l.Officer = &o
	return l, nil
}

// ListPending implements leave.LeaveRepository.
func (r *leaveRepository) ListPending(ctx context.Context) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves l
		JOIN officers o ON o.id = l.officer_id
		WHERE l.status = 'PENDING'
		ORDER BY l.created_at ASC
	`, leaveJoinColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// List implements leave.LeaveRepository.
func (r *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.OfficerID != nil && *filter.OfficerID != "" {
		conditions = append(conditions, fmt.Sprintf("l.officer_id = $%d", argIdx))
		args = append(args, *filter.OfficerID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	// Overlap predicate: the leave interval intersects the query range
	// if it starts before the range ends and ends after it starts. Each
	// bound applies independently so half-open ranges still filter.
	if filter.RangeStart != nil {
		conditions = append(conditions, fmt.Sprintf("l.end_date >= $%d", argIdx))
		args = append(args, *filter.RangeStart)
		argIdx++
	}
	if filter.RangeEnd != nil {
		conditions = append(conditions, fmt.Sprintf("l.start_date <= $%d", argIdx))
		args = append(args, *filter.RangeEnd)
		argIdx++
	}

	limitClause := ""
	if filter.Limit > 0 {
		limitClause = fmt.Sprintf("LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves l
		JOIN officers o ON o.id = l.officer_id
		WHERE %s
		ORDER BY l.start_date DESC
		%s
	`, leaveJoinColumns, strings.Join(conditions, " AND "), limitClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeaveWithOfficer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
