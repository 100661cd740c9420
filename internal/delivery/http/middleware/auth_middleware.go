package middleware

import (
	"strings"

	"gatekeeper/internal/delivery/http/response"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"

	"github.com/pkg/errors"

	"github.com/labstack/echo/v4"
)

// Context keys set by the gate for downstream handlers.
const (
	// ContextKeyUserID holds the verified subject's uuid.UUID.
	ContextKeyUserID = "userID"
	// ContextKeySessionClaims holds the full *service.SessionClaims.
	ContextKeySessionClaims = "sessionClaims"
)

// Gate responses. Each verification failure kind has its own message so a
// client can tell an expired session from a damaged one.
const (
	msgLoginRequired  = "You need to log in before viewing this"
	msgSessionExpired = "The session has expired. Please re-login."
	msgSessionInvalid = "The session is invalid. Please re-login."
	msgSessionError   = "There has been an error. Please re-login."
)

// AuthMiddleware is the authentication gate guarding protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	users    repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, users: users}
}

// Authenticate admits a request only when it carries a verifiable, unexpired
// session token whose subject still exists. On admission the subject ID and
// claims are set on the request context; on refusal it writes the 401 itself
// and the handler never runs.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, msgLoginRequired)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, msgLoginRequired)
		}

		claims, err := m.tokenSvc.VerifySession(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				return response.Unauthorized(c, msgSessionExpired)
			case errors.Is(err, service.ErrTokenMalformed):
				return response.Unauthorized(c, msgSessionInvalid)
			default:
				return response.Unauthorized(c, msgSessionError)
			}
		}

		// A token can outlive its account. Verify the subject still exists
		// before trusting the session.
		ctx := c.Request().Context()
		if _, err := m.users.FindByID(ctx, claims.UserID, repository.ProjectionID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c, msgSessionInvalid)
			}

			return response.Unauthorized(c, msgSessionError)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeySessionClaims, claims)

		return next(c)
	}
}
