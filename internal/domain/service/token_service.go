package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures are classified into exactly three kinds. The
// authentication gate matches on these sentinels exhaustively; no other
// error escapes VerifySession.
var (
	// ErrTokenExpired means the signature checked out but the clock is past exp.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers structural damage, a bad signature, or a claim
	// shape that is not a session token.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenInvalid is any other decode failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// SessionClaims is the payload of a session token: the subject's user ID plus
// the registered expiry claim.
type SessionClaims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// ValidationClaims is the payload of an account-validation token. It carries an
// email instead of a subject ID and is never accepted by the authentication gate.
type ValidationClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the compact, expiring, tamper-evident tokens
// used for sessions and account validation. Tokens are stateless: once issued,
// the server holds no record of them, and verification never consults storage.
type TokenService interface {
	// IssueSession produces a signed token encoding the subject ID with the
	// given time-to-live.
	IssueSession(userID uuid.UUID, ttl time.Duration) (string, error)

	// IssueValidation produces a short-lived token carrying the email, used only
	// to build an account-confirmation link.
	IssueValidation(email string) (string, error)

	// VerifySession decodes a session token, checking signature integrity and
	// expiry atomically. It never returns claims for a token failing either
	// check; failures are one of the three sentinel kinds above.
	VerifySession(token string) (*SessionClaims, error)

	// SessionTTL returns the configured lifetime for session tokens.
	SessionTTL() time.Duration
}
