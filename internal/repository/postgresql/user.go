package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userColumns = `
	id, email, name, role, password_hash, is_active,
	failed_attempts, locked_until, last_login, created_at, updated_at`

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.IsActive,
		&u.FailedAttempts, &u.LockedUntil, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return u, nil
}

// RecordFailedLogin implements user.UserRepository.
func (r *userRepository) RecordFailedLogin(ctx context.Context, id string, attempts int, lockUntil *time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE users
		SET failed_attempts = $1, locked_until = $2, updated_at = NOW()
		WHERE id = $3
	`, attempts, lockUntil, id)
	if err != nil {
		return fmt.Errorf("failed to record failed login: %w", err)
	}
	return nil
}

// RecordSuccessfulLogin implements user.UserRepository.
func (r *userRepository) RecordSuccessfulLogin(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE users
		SET failed_attempts = 0, locked_until = NULL, last_login = $1, updated_at = NOW()
		WHERE id = $2
	`, at, id)
	if err != nil {
		return fmt.Errorf("failed to record successful login: %w", err)
	}
	return nil
}
