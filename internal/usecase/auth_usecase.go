// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// --- Output DTOs ---

// AuthOutput returns the issued session token after a successful registration
// or login. The user entity is for internal consumers; handlers must never
// serialize its PasswordHash.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for the registration and login flows.
// This is the contract that the delivery layer (API handlers) depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
