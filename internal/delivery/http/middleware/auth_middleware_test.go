package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	mockRepo "gatekeeper/internal/mocks/repository"
	mockSvc "gatekeeper/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gateFixtures struct {
	gate   *AuthMiddleware
	tokens *mockSvc.MockTokenService
	users  *mockRepo.MockUserRepository
}

func createTestGate(t *testing.T) gateFixtures {
	tokens := mockSvc.NewMockTokenService(t)
	users := mockRepo.NewMockUserRepository(t)

	return gateFixtures{
		gate:   NewAuthMiddleware(tokens, users),
		tokens: tokens,
		users:  users,
	}
}

// runGate sends a request with the given Authorization header through the gate
// in front of a handler that records whether it ran.
func runGate(t *testing.T, gate *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerRan := false
	handler := gate.Authenticate(func(c echo.Context) error {
		handlerRan = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, handlerRan
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	fixtures := createTestGate(t)

	rec, handlerRan := runGate(t, fixtures.gate, "")
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"You need to log in before viewing this"}`, rec.Body.String())
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	fixtures := createTestGate(t)

	rec, handlerRan := runGate(t, fixtures.gate, "Basic dXNlcjpwYXNz")
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"You need to log in before viewing this"}`, rec.Body.String())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	fixtures := createTestGate(t)

	fixtures.tokens.EXPECT().
		VerifySession("expired-token").
		Return(nil, service.ErrTokenExpired)

	rec, handlerRan := runGate(t, fixtures.gate, "Bearer expired-token")
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"The session has expired. Please re-login."}`, rec.Body.String())
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	fixtures := createTestGate(t)

	fixtures.tokens.EXPECT().
		VerifySession("damaged-token").
		Return(nil, service.ErrTokenMalformed)

	rec, handlerRan := runGate(t, fixtures.gate, "Bearer damaged-token")
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"The session is invalid. Please re-login."}`, rec.Body.String())
}

func TestAuthMiddleware_OtherVerificationFailure(t *testing.T) {
	fixtures := createTestGate(t)

	fixtures.tokens.EXPECT().
		VerifySession("odd-token").
		Return(nil, service.ErrTokenInvalid)

	rec, handlerRan := runGate(t, fixtures.gate, "Bearer odd-token")
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"There has been an error. Please re-login."}`, rec.Body.String())
}

func TestAuthMiddleware_StaleSubject(t *testing.T) {
	fixtures := createTestGate(t)

	userID := uuid.New()
	fixtures.tokens.EXPECT().
		VerifySession("valid-token").
		Return(&service.SessionClaims{UserID: userID}, nil)

	// The token verifies but the account is gone.
	fixtures.users.EXPECT().
		FindByID(mock.Anything, userID, repository.ProjectionID).
		Return(nil, repository.ErrUserNotFound)

	rec, handlerRan := runGate(t, fixtures.gate, "Bearer valid-token")
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"The session is invalid. Please re-login."}`, rec.Body.String())
}

func TestAuthMiddleware_SubjectLookupFailure(t *testing.T) {
	fixtures := createTestGate(t)

	userID := uuid.New()
	fixtures.tokens.EXPECT().
		VerifySession("valid-token").
		Return(&service.SessionClaims{UserID: userID}, nil)
	fixtures.users.EXPECT().
		FindByID(mock.Anything, userID, repository.ProjectionID).
		Return(nil, errors.New("connection reset"))

	rec, handlerRan := runGate(t, fixtures.gate, "Bearer valid-token")
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"There has been an error. Please re-login."}`, rec.Body.String())
}

func TestAuthMiddleware_Admitted(t *testing.T) {
	fixtures := createTestGate(t)

	userID := uuid.New()
	fixtures.tokens.EXPECT().
		VerifySession("valid-token").
		Return(&service.SessionClaims{UserID: userID}, nil)
	fixtures.users.EXPECT().
		FindByID(mock.Anything, userID, repository.ProjectionID).
		Return(&entity.User{ID: userID}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := fixtures.gate.Authenticate(func(c echo.Context) error {
		// The gate must have placed the verified subject on the context.
		assert.Equal(t, userID, c.Get(ContextKeyUserID))
		claims, ok := c.Get(ContextKeySessionClaims).(*service.SessionClaims)
		require.True(t, ok)
		assert.Equal(t, userID, claims.UserID)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
