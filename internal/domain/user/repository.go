package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)

	// RecordFailedLogin bumps the failed-attempt counter and, when lockUntil
	// is non-nil, locks the account until that time.
	RecordFailedLogin(ctx context.Context, id string, attempts int, lockUntil *time.Time) error

	// RecordSuccessfulLogin clears the failed-attempt state and stamps the
	// last login time.
	RecordSuccessfulLogin(ctx context.Context, id string, at time.Time) error
}
