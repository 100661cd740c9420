// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single persistent identity record of the system.
// PasswordHash always holds the bcrypt output, never the plaintext password,
// and is never serialized into an outbound response.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned by the store on creation. Immutable.
	Email        string    // Login identifier. Unique across all users (enforced by the store).
	PasswordHash string    // bcrypt hash of the user's password.
	Confirmed    bool      // False until the account-confirmation flow flips it.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
