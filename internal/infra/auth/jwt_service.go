// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret        string        // Single server-wide symmetric signing secret.
	sessionTTL    time.Duration // Default time-to-live for session tokens.
	validationTTL time.Duration // Time-to-live for account-validation tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:        cfg.Auth.Secret,
		sessionTTL:    cfg.Auth.SessionTTL,
		validationTTL: cfg.Auth.ValidationTTL,
	}, nil
}

// IssueSession creates a signed session token encoding the subject ID and expiry.
func (s *jwtService) IssueSession(userID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.sessionTTL
	}

	claims := &service.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// IssueValidation creates a short-lived token carrying only the email claim.
// Its claim shape differs from a session token, so VerifySession rejects it.
func (s *jwtService) IssueValidation(email string) (string, error) {
	claims := &service.ValidationClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.validationTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// VerifySession decodes a session token and checks signature and expiry in one
// pass. Expiry is compared strictly against the current instant, with no leeway.
func (s *jwtService) VerifySession(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	// A structurally valid token without a subject ID (e.g. a validation token)
	// is not a session credential.
	if claims.UserID == uuid.Nil {
		return nil, service.ErrTokenMalformed
	}

	return claims, nil
}

// SessionTTL returns the configured default lifetime for session tokens.
func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// classifyTokenError collapses the library's error tree into the three domain
// sentinels the authentication gate matches on.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrTokenMalformed
	default:
		return service.ErrTokenInvalid
	}
}
