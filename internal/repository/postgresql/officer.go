package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/officer"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const officerColumns = `
	id, ao_number, pc_number, first_name, last_name, rank, station,
	contact_number, email, date_of_joining, status,
	annual_leave_entitlement, annual_leave_taken,
	sick_leave_entitlement, sick_leave_taken,
	created_at, updated_at`

type officerRepository struct {
	db *database.DB
}

func NewOfficerRepository(db *database.DB) officer.OfficerRepository {
	return &officerRepository{db: db}
}

func scanOfficer(row pgx.Row) (officer.Officer, error) {
	var o officer.Officer
	err := row.Scan(
		&o.ID, &o.AONumber, &o.PCNumber, &o.FirstName, &o.LastName, &o.Rank, &o.Station,
		&o.ContactNumber, &o.Email, &o.DateOfJoining, &o.Status,
		&o.AnnualLeaveEntitlement, &o.AnnualLeaveTaken,
		&o.SickLeaveEntitlement, &o.SickLeaveTaken,
		&o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// Create implements officer.OfficerRepository.
func (r *officerRepository) Create(ctx context.Context, o officer.Officer) (officer.Officer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO officers (
			ao_number, pc_number, first_name, last_name, rank, station,
			contact_number, email, date_of_joining, status,
			annual_leave_entitlement, sick_leave_entitlement
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, annual_leave_taken, sick_leave_taken, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		o.AONumber, o.PCNumber, o.FirstName, o.LastName, o.Rank, o.Station,
		o.ContactNumber, o.Email, o.DateOfJoining, o.Status,
		o.AnnualLeaveEntitlement, o.SickLeaveEntitlement,
	).Scan(&o.ID, &o.AnnualLeaveTaken, &o.SickLeaveTaken, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return officer.Officer{}, officer.ErrDuplicateNumber
		}
		return officer.Officer{}, fmt.Errorf("failed to create officer: %w", err)
	}

	return o, nil
}

// GetByID implements officer.OfficerRepository.
func (r *officerRepository) GetByID(ctx context.Context, id string) (officer.Officer, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM officers WHERE id = $1`, officerColumns)

	o, err := scanOfficer(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return officer.Officer{}, officer.ErrOfficerNotFound
		}
		return officer.Officer{}, fmt.Errorf("failed to get officer by ID: %w", err)
	}

	return o, nil
}

// ExistsByNumbers implements officer.OfficerRepository.
func (r *officerRepository) ExistsByNumbers(ctx context.Context, aoNumber, pcNumber string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM officers
			WHERE (ao_number = $1 OR pc_number = $2)
			  AND ($3::uuid IS NULL OR id <> $3)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, aoNumber, pcNumber, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check officer numbers: %w", err)
	}
	return exists, nil
}

// List implements officer.OfficerRepository.
func (r *officerRepository) List(ctx context.Context, filter officer.OfficerFilter) ([]officer.Officer, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(ao_number ILIKE $%d OR pc_number ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Station != nil && *filter.Station != "" {
		conditions = append(conditions, fmt.Sprintf("station = $%d", argIdx))
		args = append(args, *filter.Station)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM officers WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count officers: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM officers
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, officerColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list officers: %w", err)
	}
	defer rows.Close()

	var officers []officer.Officer
	for rows.Next() {
		o, err := scanOfficer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan officer: %w", err)
		}
		officers = append(officers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read officers: %w", err)
	}

	return officers, total, nil
}

// Update implements officer.OfficerRepository.
func (r *officerRepository) Update(ctx context.Context, id string, req officer.UpdateOfficerRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.AONumber != nil {
		appendSet("ao_number", *req.AONumber)
	}
	if req.PCNumber != nil {
		appendSet("pc_number", *req.PCNumber)
	}
	if req.FirstName != nil {
		appendSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		appendSet("last_name", *req.LastName)
	}
	if req.Rank != nil {
		appendSet("rank", *req.Rank)
	}
	if req.Station != nil {
		appendSet("station", *req.Station)
	}
	if req.ContactNumber != nil {
		appendSet("contact_number", *req.ContactNumber)
	}
	if req.Email != nil {
		if *req.Email == "" {
			sets = append(sets, "email = NULL")
		} else {
			appendSet("email", *req.Email)
		}
	}
	if req.DateOfJoining != nil {
		appendSet("date_of_joining", *req.DateOfJoining)
	}
	if req.Status != nil {
		appendSet("status", *req.Status)
	}
	if req.AnnualLeaveEntitlement != nil {
		appendSet("annual_leave_entitlement", *req.AnnualLeaveEntitlement)
	}
	if req.SickLeaveEntitlement != nil {
		appendSet("sick_leave_entitlement", *req.SickLeaveEntitlement)
	}

	query := fmt.Sprintf("UPDATE officers SET %s WHERE id = $%d", strings.Join(sets, ", "), argIdx)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return officer.ErrDuplicateNumber
		}
		return fmt.Errorf("failed to update officer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return officer.ErrOfficerNotFound
	}

	return nil
}

// SetStatus implements officer.OfficerRepository.
func (r *officerRepository) SetStatus(ctx context.Context, id string, status officer.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE officers SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to set officer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return officer.ErrOfficerNotFound
	}
	return nil
}

// IncrementLeaveTaken implements officer.OfficerRepository.
func (r *officerRepository) IncrementLeaveTaken(ctx context.Context, id string, category officer.LeaveCategory, days int) error {
	q := GetQuerier(ctx, r.db)

	column := "annual_leave_taken"
	if category == officer.CategorySick {
		column = "sick_leave_taken"
	}

	query := fmt.Sprintf("UPDATE officers SET %s = %s + $1, updated_at = NOW() WHERE id = $2", column, column)
	tag, err := q.Exec(ctx, query, days, id)
	if err != nil {
		return fmt.Errorf("failed to increment leave taken: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return officer.ErrOfficerNotFound
	}
	return nil
}

// ListStations implements officer.OfficerRepository.
func (r *officerRepository) ListStations(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT station FROM officers WHERE status = 'ACTIVE' ORDER BY station`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	defer rows.Close()

	var stations []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}
