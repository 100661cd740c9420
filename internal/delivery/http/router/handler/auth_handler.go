// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gatekeeper/internal/delivery/http/response"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the register and login endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		// An unreadable body cannot carry a valid email.
		return domainerrors.ErrInvalidEmail.WrapMessage("malformed request body")
	}
	if err := c.Validate(&input); err != nil {
		return credentialValidationError(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, http.StatusOK, "User created successfully", output.Token)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidEmail.WrapMessage("malformed request body")
	}
	if err := c.Validate(&input); err != nil {
		return credentialValidationError(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Token(c, http.StatusOK, "Signed in successfully", output.Token)
}

// credentialValidationError maps a field validation failure to the flow error
// for that field. Email is checked before password, matching the usecase gates.
func credentialValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Field() == "Email" {
				return domainerrors.ErrInvalidEmail.WrapMessage("email failed validation")
			}
		}

		return domainerrors.ErrInvalidPassword.WrapMessage("password failed validation")
	}

	return domainerrors.ErrInvalidEmail.WrapMessage("input failed validation")
}
