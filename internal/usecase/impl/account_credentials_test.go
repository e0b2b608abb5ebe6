package impl

import (
	"context"
	"testing"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/infra/auth"
	mockRepo "bookshelf/internal/mocks/repository"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// These tests wire the real hasher against mocked storage, so the composed
// behavior of salt generation, digest derivation and verification is exercised
// rather than stubbed.

func createCredentialService(t *testing.T) (usecase.AccountUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewAccountService(AccountServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    auth.NewSHA256Hasher(),
		Logger:    newDiscardLogger(),
	})

	return service, txManager, userRepo
}

func TestAccountService_RegisterThenLogin_RoundTrip(t *testing.T) {
	service, txManager, userRepo := createCredentialService(t)
	ctx := context.Background()

	var stored *entity.User

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)

			txUserRepo.EXPECT().
				FindByUsername(ctx, "alice").
				Return(nil, repository.ErrUserNotFound)

			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					stored = user
				}).
				Return(nil)

			return fn(mockFactory)
		})

	_, err := service.Register(ctx, usecase.RegisterAccountInput{Username: "alice", Password: "sekret"})
	require.NoError(t, err)
	require.NotNil(t, stored)

	// The persisted shape: 16 random bytes as hex, and a hex SHA-256 digest.
	assert.Len(t, stored.Salt, 32)
	assert.Len(t, stored.HashedPassword, 64)

	userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)

	require.NoError(t, service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "sekret"}))

	err = service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_UpdatePassword_InvalidatesOldPassword(t *testing.T) {
	service, _, userRepo := createCredentialService(t)
	ctx := context.Background()

	hasher := auth.NewSHA256Hasher()
	originalSalt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	var rotatedSalt, rotatedDigest string

	userRepo.EXPECT().
		UpdateCredentials(ctx, "alice", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(ctx context.Context, username, salt, hashedPassword string) {
			rotatedSalt = salt
			rotatedDigest = hashedPassword
		}).
		Return(nil)

	require.NoError(t, service.UpdatePassword(ctx, usecase.UpdatePasswordInput{
		Username:    "alice",
		NewPassword: "newsekret",
	}))

	// Rotation must mint a fresh salt, never reuse the old one.
	require.Len(t, rotatedSalt, 32)
	assert.NotEqual(t, originalSalt, rotatedSalt)

	rotated := &entity.User{
		ID:             uuid.New(),
		Username:       "alice",
		Salt:           rotatedSalt,
		HashedPassword: rotatedDigest,
	}
	userRepo.EXPECT().FindByUsername(ctx, "alice").Return(rotated, nil)

	require.NoError(t, service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "newsekret"}))

	err = service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "oldsekret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
