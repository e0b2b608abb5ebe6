// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummySalt and dummyDigest feed a throwaway comparison when login hits an
// unknown username, so the miss path does roughly the same work as a hit.
const (
	dummySalt   = "00000000000000000000000000000000"
	dummyDigest = "0000000000000000000000000000000000000000000000000000000000000000"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The salt and digest are derived before the
// transaction opens so no hashing happens while a connection is held.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterAccountInput) (*usecase.RegisterOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "username and password are required")
	}

	srv.log(ctx).Info("Starting account registration", slog.String("username", input.Username))

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		srv.log(ctx).Error("Failed to generate salt during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate salt during registration")
	}
	digest := srv.hasher.Hash(input.Password, salt)

	newUser := &entity.User{
		Username:       input.Username,
		Salt:           salt,
		HashedPassword: digest,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Fast pre-check. The unique index on username still decides races
		// between concurrent registrations; Create maps that violation to
		// the same duplicate error.
		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateUsername, "username already exists")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account registration transaction")
	}

	srv.log(ctx).Debug("Account registered", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies a username/password pair. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) error {
	if input.Username == "" || input.Password == "" {
		return errors.Wrap(domainerrors.ErrInvalidInput, "username and password are required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a comparison so the unknown-username path is not
			// observably cheaper than a digest mismatch.
			srv.hasher.Verify(input.Password, dummySalt, dummyDigest)

			srv.log(ctx).Warn("Login failed for unknown username", slog.String("username", input.Username))

			return errors.Wrap(domainerrors.ErrInvalidCredentials, "invalid username or password")
		}

		srv.log(ctx).Error("Failed to load user during login", slog.Any("error", err))

		return errors.Wrap(err, "failed to load user during login")
	}

	if !srv.hasher.Verify(input.Password, user.Salt, user.HashedPassword) {
		srv.log(ctx).Warn("Login failed for wrong password", slog.String("username", input.Username))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "invalid username or password")
	}

	srv.log(ctx).Debug("Login verified", slog.Any("userID", user.ID))

	return nil
}

// UpdatePassword rotates the account's credentials. A fresh salt is generated
// for every rotation; the old salt is never reused.
func (srv *accountService) UpdatePassword(ctx context.Context, input usecase.UpdatePasswordInput) error {
	if input.Username == "" || input.NewPassword == "" {
		return errors.Wrap(domainerrors.ErrInvalidInput, "username and new password are required")
	}

	srv.log(ctx).Info("Rotating password", slog.String("username", input.Username))

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		srv.log(ctx).Error("Failed to generate salt during password rotation", slog.Any("error", err))

		return errors.Wrap(err, "failed to generate salt during password rotation")
	}
	digest := srv.hasher.Hash(input.NewPassword, salt)

	if err := srv.userRepo.UpdateCredentials(ctx, input.Username, salt, digest); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		srv.log(ctx).Error("Failed to update credentials", slog.Any("error", err))

		return errors.Wrap(err, "failed to update credentials")
	}

	srv.log(ctx).Debug("Password rotated", slog.String("username", input.Username))

	return nil
}

// DeleteAccount removes an account by its ID.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("userID", userID))

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		srv.log(ctx).Error("Failed to delete account", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}
