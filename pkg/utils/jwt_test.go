package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager("test-secret", time.Hour, 24*time.Hour, 15*time.Minute)
}

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID, "anna", "admin")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "anna", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.False(t, claims.PINLogin)
}

func TestJWTManager_PINTokenMarked(t *testing.T) {
	m := newTestManager()

	token, err := m.GeneratePINToken(uuid.New(), "marco", "waiter")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.True(t, claims.PINLogin)
}

func TestJWTManager_RefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	token, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTManager_TokenKindsNotInterchangeable(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	access, err := m.GenerateAccessToken(userID, "anna", "admin")
	require.NoError(t, err)

	// An access token must not pass refresh validation.
	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTManager_RejectsForeignSignature(t *testing.T) {
	m := newTestManager()
	other := NewJWTManager("different-secret", time.Hour, 24*time.Hour, 15*time.Minute)

	token, err := other.GenerateAccessToken(uuid.New(), "anna", "admin")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 24*time.Hour, 15*time.Minute)

	token, err := m.GenerateAccessToken(uuid.New(), "anna", "admin")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pin")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pin", hash)

	assert.True(t, CheckPasswordHash("s3cret-pin", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
