// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
)

// emailPattern accepts the printable address characters allowed in the local
// part, followed by dot-separated domain labels.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")

const minPasswordLength = 8

// authService implements the AuthUsecase interface.
type authService struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	tokens service.TokenService
	mailer service.Mailer
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	mailer service.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account from an email and password, dispatches an
// account-confirmation link, and signs the caller in by issuing a session token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Registering user", slog.String("email", input.Email))

	// 1. Hard gates, checked in order: email shape first, then password length.
	if err := validateCredentials(input.Email, input.Password); err != nil {
		return nil, err
	}

	// 2. Advisory duplicate pre-check. The store's unique index is the real
	// authority; this just catches the common case before hashing work.
	if _, err := srv.users.FindByEmail(ctx, input.Email, repository.ProjectionID); err == nil {
		return nil, domainerrors.ErrDuplicateAccount.WrapMessage("email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check for existing account", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to check for existing account")
	}

	// 3. Hash the password. The plaintext goes no further than this call.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to hash password")
	}

	// 4. Persist. A concurrent registration of the same email loses here with
	// the same duplicate-account error as the pre-check.
	user := &entity.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
	}
	if err := srv.users.Create(ctx, user); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to create user")
	}

	// 5. Dispatch the confirmation link.
	if err := srv.sendValidationLink(ctx, user.Email); err != nil {
		return nil, err
	}

	// 6. Registration doubles as the first sign-in.
	sessionToken, err := srv.tokens.IssueSession(user.ID, srv.tokens.SessionTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to issue session token")
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	user.PasswordHash = ""

	return &usecase.AuthOutput{Token: sessionToken, User: user}, nil
}

// Login verifies an email and password pair and issues a session token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Logging in user", slog.String("email", input.Email))

	if err := validateCredentials(input.Email, input.Password); err != nil {
		return nil, err
	}

	user, err := srv.users.FindByEmail(ctx, input.Email, repository.ProjectionCredentials)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}
		srv.log(ctx).Error("Failed to look up account", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to look up account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	sessionToken, err := srv.tokens.IssueSession(user.ID, srv.tokens.SessionTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to issue session token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	user.PasswordHash = ""

	return &usecase.AuthOutput{Token: sessionToken, User: user}, nil
}

// sendValidationLink issues a validation token for the email and hands the
// resulting confirmation link to the mailer.
func (srv *authService) sendValidationLink(ctx context.Context, email string) error {
	validationToken, err := srv.tokens.IssueValidation(email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue validation token", slog.Any("error", err))

		return domainerrors.ErrInternal.WrapMessage("failed to issue validation token")
	}

	link := strings.TrimSuffix(srv.cfg.Frontend.BaseURL, "/") + "/authentication/validate/" + validationToken
	if err := srv.mailer.SendValidationLink(ctx, email, link); err != nil {
		srv.log(ctx).Error("Failed to send validation email", slog.Any("error", err))

		return domainerrors.ErrInternal.WrapMessage("failed to send validation email")
	}

	return nil
}

// validateCredentials applies the shared register/login input gates.
func validateCredentials(email, password string) error {
	if !emailPattern.MatchString(email) {
		return domainerrors.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return domainerrors.ErrInvalidPassword
	}

	return nil
}
