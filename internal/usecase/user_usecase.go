package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines account-read operations available to authenticated callers.
type UserUsecase interface {
	// GetMe resolves the authenticated subject's own account record.
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
