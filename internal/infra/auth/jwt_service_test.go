package auth

import (
	"strings"
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:        "test_signing_secret_very_long_for_testing",
			SessionTTL:    time.Hour,
			ValidationTTL: 24 * time.Hour,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerifySession(t *testing.T) {
	svc := newTestTokenService(t)
	userID := uuid.New()

	token, err := svc.IssueSession(userID, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifySession(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_VerifyExpiredSession(t *testing.T) {
	svc := newTestTokenService(t)

	// A negative TTL puts exp in the past at issuance.
	token, err := svc.IssueSession(uuid.New(), -time.Minute)
	require.NoError(t, err)

	claims, err := svc.VerifySession(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_VerifyTamperedSession(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueSession(uuid.New(), time.Hour)
	require.NoError(t, err)

	// Flip one character of the payload; the signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	claims, err := svc.VerifySession(tampered)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_VerifyGarbageToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.VerifySession("clearly-not-a-jwt-token")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	otherCfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:     "a_different_signing_secret_entirely",
			SessionTTL: time.Hour,
		},
	}
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.IssueSession(uuid.New(), time.Hour)
	require.NoError(t, err)

	claims, err := svc.VerifySession(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_ValidationTokenRejectedAsSession(t *testing.T) {
	svc := newTestTokenService(t)

	// A validation token is signed with the same secret but carries no subject
	// ID. It must never pass as a session credential.
	token, err := svc.IssueValidation("user@example.com")
	require.NoError(t, err)

	claims, err := svc.VerifySession(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_DefaultSessionTTL(t *testing.T) {
	svc := newTestTokenService(t)

	// Zero TTL falls back to the configured default.
	token, err := svc.IssueSession(uuid.New(), 0)
	require.NoError(t, err)

	claims, err := svc.VerifySession(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(svc.SessionTTL()), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{Secret: ""},
	}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt signing secret must be provided")
}
