// Package validator wires go-playground/validator into Echo so handlers can
// call c.Validate on bound request DTOs.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
