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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookServiceFixtures holds all test dependencies for book service tests.
// The collection cache is left nil so every read goes straight to the repository.
type bookServiceFixtures struct {
	service  usecase.BookUsecase
	bookRepo *mockRepo.MockBookRepository
	userRepo *mockRepo.MockUserRepository
	catalog  *mockSvc.MockBookCatalog
}

func createTestBookService(t *testing.T) bookServiceFixtures {
	bookRepo := mockRepo.NewMockBookRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	catalog := mockSvc.NewMockBookCatalog(t)

	service := NewBookService(BookServiceParams{
		BookRepo: bookRepo,
		UserRepo: userRepo,
		Catalog:  catalog,
		Logger:   newDiscardLogger(),
	})

	return bookServiceFixtures{
		service:  service,
		bookRepo: bookRepo,
		userRepo: userRepo,
		catalog:  catalog,
	}
}

func testBook(userID uuid.UUID) *entity.Book {
	return &entity.Book{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "The Go Programming Language",
		Author: "Alan A. A. Donovan",
		Year:   "2015",
		Status: entity.StatusUnread,
	}
}

func TestBookService_AddBook_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.AddBookInput{
		UserID: userID,
		Title:  "The Go Programming Language",
		Author: "Alan A. A. Donovan",
		Year:   "2015",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(testUser("alice"), nil)

	fx.bookRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(ctx context.Context, book *entity.Book) {
			book.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.AddBook(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Title, output.Book.Title)
	assert.Equal(t, entity.StatusUnread, output.Book.Status)
	assert.NotEqual(t, uuid.Nil, output.Book.ID)
}

func TestBookService_AddBook_MissingFields(t *testing.T) {
	fx := createTestBookService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.AddBookInput
	}{
		{name: "missing title", input: usecase.AddBookInput{UserID: uuid.New(), Author: "someone"}},
		{name: "missing author", input: usecase.AddBookInput{UserID: uuid.New(), Title: "something"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := fx.service.AddBook(ctx, tt.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestBookService_AddBook_OwnerNotFound(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.AddBook(ctx, usecase.AddBookInput{
		UserID: userID,
		Title:  "orphan",
		Author: "nobody",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestBookService_GetBook_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	book := testBook(uuid.New())

	fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)

	found, err := fx.service.GetBook(ctx, book.ID)

	require.NoError(t, err)
	assert.Equal(t, book, found)
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()

	fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	found, err := fx.service.GetBook(ctx, bookID)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestBookService_UpdateReadingStatus_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	book := testBook(uuid.New())

	fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)
	fx.bookRepo.EXPECT().UpdateStatus(ctx, book.ID, entity.StatusRead).Return(nil)

	require.NoError(t, fx.service.UpdateReadingStatus(ctx, book.ID, entity.StatusRead))
}

func TestBookService_UpdateReadingStatus_InvalidStatus(t *testing.T) {
	fx := createTestBookService(t)

	err := fx.service.UpdateReadingStatus(context.Background(), uuid.New(), entity.ReadingStatus("reading"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookService_UpdateReadingStatus_NotFound(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()

	fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	err := fx.service.UpdateReadingStatus(ctx, bookID, entity.StatusRead)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestBookService_DeleteBook_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	book := testBook(uuid.New())

	fx.bookRepo.EXPECT().FindByID(ctx, book.ID).Return(book, nil)
	fx.bookRepo.EXPECT().Delete(ctx, book.ID).Return(nil)

	require.NoError(t, fx.service.DeleteBook(ctx, book.ID))
}

func TestBookService_DeleteBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()

	fx.bookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)

	err := fx.service.DeleteBook(ctx, bookID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestBookService_ListCollection(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()
	books := []*entity.Book{testBook(userID), testBook(userID)}

	fx.bookRepo.EXPECT().ListByUser(ctx, userID).Return(books, nil)

	listed, err := fx.service.ListCollection(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, books, listed)
}

func TestBookService_ListCollection_Empty(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.bookRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.Book{}, nil)

	listed, err := fx.service.ListCollection(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestBookService_LookupDetails_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	details := &entity.CatalogBook{
		Title:         "The Go Programming Language",
		Author:        "Alan A. A. Donovan, Brian W. Kernighan",
		PublishedDate: "2015-11-16",
	}

	fx.catalog.EXPECT().Lookup(ctx, "The Go Programming Language").Return(details, nil)

	found, err := fx.service.LookupDetails(ctx, "The Go Programming Language")

	require.NoError(t, err)
	assert.Equal(t, details, found)
}

func TestBookService_LookupDetails_EmptyTitle(t *testing.T) {
	fx := createTestBookService(t)

	found, err := fx.service.LookupDetails(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestBookService_LookupDetails_CatalogErrorsPassThrough(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()

	fx.catalog.EXPECT().
		Lookup(ctx, "unknown").
		Return(nil, domainerrors.ErrCatalogNotFound.WrapMessage("no catalog match for title"))

	found, err := fx.service.LookupDetails(ctx, "unknown")

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogNotFound)
}
