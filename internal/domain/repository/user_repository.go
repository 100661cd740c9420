// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// Projection names the columns a caller wants fetched. An empty projection
// fetches every column. This is a performance contract, not a correctness one:
// callers must not rely on unselected fields being zero or populated.
type Projection []string

// Common projections used by the authentication flows.
var (
	// ProjectionID fetches only the identifier, for existence checks.
	ProjectionID = Projection{"id"}
	// ProjectionCredentials fetches what the login flow needs to verify a password.
	ProjectionCredentials = Projection{"id", "password_hash"}
	// ProjectionAccount fetches the fields exposed on the account endpoint.
	ProjectionAccount = Projection{"id", "email"}
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
//
// Email uniqueness is enforced by the store itself (unique index); Create returns
// the duplicate-account domain error on a uniqueness violation so callers can treat
// a storage-layer rejection exactly like their own advisory pre-check.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string, fields Projection) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID, fields Projection) (*entity.User, error)

	// Create persists a new user entity and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
