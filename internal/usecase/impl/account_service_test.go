package impl

import (
	"context"
	"testing"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	mockRepo "bookshelf/internal/mocks/repository"
	mockSvc "bookshelf/internal/mocks/service"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSalt   = "aabbccddeeff00112233445566778899"
	testDigest = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service   usecase.AccountUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAccountService(AccountServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func testUser(username string) *entity.User {
	return &entity.User{
		ID:             uuid.New(),
		Username:       username,
		Salt:           testSalt,
		HashedPassword: testDigest,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterAccountInput{Username: "alice", Password: "sekret"}

	fx.hasher.EXPECT().GenerateSalt().Return(testSalt, nil)
	fx.hasher.EXPECT().Hash(input.Password, testSalt).Return(testDigest)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, testSalt, output.User.Salt)
	assert.Equal(t, testDigest, output.User.HashedPassword)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.RegisterAccountInput
	}{
		{name: "empty username", input: usecase.RegisterAccountInput{Password: "sekret"}},
		{name: "empty password", input: usecase.RegisterAccountInput{Username: "alice"}},
		{name: "both empty", input: usecase.RegisterAccountInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.Register(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterAccountInput{Username: "alice", Password: "sekret"}

	fx.hasher.EXPECT().GenerateSalt().Return(testSalt, nil)
	fx.hasher.EXPECT().Hash(input.Password, testSalt).Return(testDigest)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(testUser(input.Username), nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestAccountService_Register_DuplicateFromConstraint(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterAccountInput{Username: "alice", Password: "sekret"}

	fx.hasher.EXPECT().GenerateSalt().Return(testSalt, nil)
	fx.hasher.EXPECT().Hash(input.Password, testSalt).Return(testDigest)

	// The pre-check misses but a concurrent registration wins the race; the
	// unique index surfaces the conflict through Create.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, input.Username).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrDuplicateUsername.WrapMessage("username already exists"))

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestAccountService_Register_SaltGenerationFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterAccountInput{Username: "alice", Password: "sekret"}

	fx.hasher.EXPECT().GenerateSalt().Return("", errors.New("entropy source unavailable"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := testUser("alice")

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Verify("sekret", user.Salt, user.HashedPassword).Return(true)

	err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "sekret"})

	require.NoError(t, err)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := testUser("alice")

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Verify("wrong", user.Salt, user.HashedPassword).Return(false)

	err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	// The unknown-username path still performs a digest comparison.
	fx.hasher.EXPECT().Verify("sekret", dummySalt, dummyDigest).Return(false)

	err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "sekret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAccountService_Login_StorageFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	storageErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user by username")

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, storageErr)

	err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "sekret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_UNAVAILABLE", appErr.ErrorCode())
}

func TestAccountService_UpdatePassword_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().GenerateSalt().Return(testSalt, nil)
	fx.hasher.EXPECT().Hash("newsekret", testSalt).Return(testDigest)
	fx.userRepo.EXPECT().UpdateCredentials(ctx, "alice", testSalt, testDigest).Return(nil)

	err := fx.service.UpdatePassword(ctx, usecase.UpdatePasswordInput{
		Username:    "alice",
		NewPassword: "newsekret",
	})

	require.NoError(t, err)
}

func TestAccountService_UpdatePassword_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().GenerateSalt().Return(testSalt, nil)
	fx.hasher.EXPECT().Hash("newsekret", testSalt).Return(testDigest)
	fx.userRepo.EXPECT().
		UpdateCredentials(ctx, "ghost", testSalt, testDigest).
		Return(repository.ErrUserNotFound)

	err := fx.service.UpdatePassword(ctx, usecase.UpdatePasswordInput{
		Username:    "ghost",
		NewPassword: "newsekret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_UpdatePassword_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.UpdatePassword(context.Background(), usecase.UpdatePasswordInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, userID))
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteAccount(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
