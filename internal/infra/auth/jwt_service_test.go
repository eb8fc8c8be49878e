package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/config"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.TokenSecret = secret

	return cfg
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	// Drive the clock logically rather than sleeping.
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(42)
	require.NoError(t, err)

	// Just inside the window: still valid.
	jwtSvc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = svc.Validate(token)
	assert.NoError(t, err)

	// Past the one-hour window: rejected.
	jwtSvc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("other-secret"))
	require.NoError(t, err)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Validate("not-a-token")
	assert.Error(t, err)
}
