package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/http/middleware"
	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for authenticated account endpoints.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// userView is the public projection of an account. The password hash has no
// representation here.
type userView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// GetMe returns the authenticated caller's own account.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		// Only reachable if the route was registered without the gate.
		return domainerrors.ErrInternal.WrapMessage("subject missing from context")
	}

	user, err := h.uc.GetMe(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.User(c, http.StatusOK, "User retrieved successfully", userView{
		ID:    user.ID,
		Email: user.Email,
	})
}
