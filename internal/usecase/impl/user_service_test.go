package impl

import (
	"context"
	"testing"

	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	mockRepo "gatekeeper/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetMe_Success(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	service := NewUserService(users, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	users.EXPECT().
		FindByID(ctx, userID, repository.ProjectionAccount).
		Return(&entity.User{ID: userID, Email: "user@example.com"}, nil)

	user, err := service.GetMe(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUserService_GetMe_AccountDeleted(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	service := NewUserService(users, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	// The token verified but its subject row is gone.
	users.EXPECT().
		FindByID(ctx, userID, repository.ProjectionAccount).
		Return(nil, repository.ErrUserNotFound)

	user, err := service.GetMe(ctx, userID)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetMe_StoreFailure(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	service := NewUserService(users, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	users.EXPECT().
		FindByID(ctx, userID, repository.ProjectionAccount).
		Return(nil, errors.New("connection reset"))

	user, err := service.GetMe(ctx, userID)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInternal))
}
