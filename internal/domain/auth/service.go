package auth

import (
	"context"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
)

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	// Repeated failures lock the account for a cooldown period.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid, unrevoked refresh token for a new access
	// token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the profile of the authenticated caller.
	Me(ctx context.Context, identity user.Identity) (UserResponse, error)
}
