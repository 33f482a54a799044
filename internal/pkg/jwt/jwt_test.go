package jwt

import (
	"testing"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAndDecodeAccessToken(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "hr@metro-pts.gov.za", user.RoleHRAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	role, _ := decoded.Get("role")
	assert.Equal(t, "HR_ADMIN", role)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "user-1", userID)
}

func TestValidateRefreshToken(t *testing.T) {
	svc := newTestService()

	refresh, _, err := svc.GenerateRefreshToken("user-2")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-2", userID)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	access, _, err := svc.GenerateAccessToken("user-3", "viewer@metro-pts.gov.za", user.RoleViewer)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := newTestService()

	refresh, _, err := svc.GenerateRefreshToken("user-4")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(refresh))
	svc.RevokeToken(refresh)
	assert.True(t, svc.IsTokenRevoked(refresh))
}

func TestInvalidExpirationDuration(t *testing.T) {
	svc := NewJWTService("secret", "not-a-duration", "24h")
	_, _, err := svc.GenerateAccessToken("user-5", "x@y.za", user.RoleViewer)
	assert.Error(t, err)
}
