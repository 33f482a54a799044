package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/auth"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	// maxFailedAttempts failed logins in a row lock the account.
	maxFailedAttempts = 5
	lockoutDuration   = 30 * time.Minute
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.IsActive {
		return auth.LoginResponse{}, auth.ErrAccountDisabled
	}

	now := time.Now()
	if userData.LockedUntil != nil && now.Before(*userData.LockedUntil) {
		return auth.LoginResponse{}, auth.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		attempts := userData.FailedAttempts + 1
		var lockUntil *time.Time
		if attempts >= maxFailedAttempts {
			t := now.Add(lockoutDuration)
			lockUntil = &t
		}
		if recErr := a.UserRepository.RecordFailedLogin(ctx, userData.ID, attempts, lockUntil); recErr != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to record failed login: %w", recErr)
		}
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := a.UserRepository.RecordSuccessfulLogin(ctx, userData.ID, now); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to record successful login: %w", err)
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, _, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User: auth.UserResponse{
			ID:    userData.ID,
			Email: userData.Email,
			Name:  userData.Name,
			Role:  string(userData.Role),
		},
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if refreshToken == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if !userData.IsActive {
		return auth.RefreshResponse{}, auth.ErrAccountDisabled
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, identity user.Identity) (auth.UserResponse, error) {
	if err := identity.Authorize(false); err != nil {
		return auth.UserResponse{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.UserResponse{}, user.ErrUserNotFound
		}
		return auth.UserResponse{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return auth.UserResponse{
		ID:    userData.ID,
		Email: userData.Email,
		Name:  userData.Name,
		Role:  string(userData.Role),
	}, nil
}
