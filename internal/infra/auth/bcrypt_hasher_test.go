package auth

import (
	"testing"

	"gatekeeper/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "same input twice"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Each hash carries its own salt, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// A damaged stored hash must read as a mismatch, never a panic or error.
	assert.False(t, hasher.Check("any password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("any password", ""))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("configured cost")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("default cost")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, defaultBcryptCost, cost)
}
