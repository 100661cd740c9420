package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(users repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe resolves the authenticated subject's own account record. The subject ID
// comes from a verified session token, so a missing row means the account was
// deleted after the token was issued.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting current user", slog.Any("user_id", userID))

	user, err := srv.users.FindByID(ctx, userID, repository.ProjectionAccount)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("account no longer exists")
		}
		srv.log(ctx).Error("Failed to look up account", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to look up account")
	}

	return user, nil
}
