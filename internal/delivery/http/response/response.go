// Package response defines the wire shapes of all API responses. The shapes
// are part of the public contract; handlers never build JSON bodies inline.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// MessageBody is the minimal envelope: flow errors and plain confirmations.
type MessageBody struct {
	Message string `json:"message"`
}

// TokenBody is the success envelope for register and login.
type TokenBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserBody is the success envelope for account reads.
type UserBody struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// UnauthorizedBody is the envelope the authentication gate emits. It is
// deliberately distinct from the flow error envelope.
type UnauthorizedBody struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Token writes a {message, token} success response.
func Token(c echo.Context, statusCode int, message, token string) error {
	return c.JSON(statusCode, TokenBody{Message: message, Token: token})
}

// Message writes a bare {message} response, used for both confirmations and
// flow errors.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// User writes a {message, user} success response.
func User(c echo.Context, statusCode int, message string, user any) error {
	return c.JSON(statusCode, UserBody{Message: message, User: user})
}

// Unauthorized writes the gate's 401 envelope.
func Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, UnauthorizedBody{Status: "error", Error: message})
}
