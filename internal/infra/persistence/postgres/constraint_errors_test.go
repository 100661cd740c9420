package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "idx_users_email"`)))
	assert.True(t, isUniqueConstraintViolation(errors.New("ERROR: some failure (SQLSTATE 23505)")))

	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("ERROR: some failure (SQLSTATE 23502)")))

	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
