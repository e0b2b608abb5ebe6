package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/domain/service"
	"bookshelf/internal/infra/cache"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo        repository.BookRepository
	userRepo        repository.UserRepository
	catalog         service.BookCatalog
	collectionCache *cache.CollectionCache
	logger          *slog.Logger
}

// BookServiceParams holds dependencies for bookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo        repository.BookRepository
	UserRepo        repository.UserRepository
	Catalog         service.BookCatalog
	CollectionCache *cache.CollectionCache
	Logger          *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		bookRepo:        params.BookRepo,
		userRepo:        params.UserRepo,
		catalog:         params.Catalog,
		collectionCache: params.CollectionCache,
		logger:          params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddBook records a new book in the owner's collection.
func (srv *bookService) AddBook(ctx context.Context, input usecase.AddBookInput) (*usecase.AddBookOutput, error) {
	if input.Title == "" || input.Author == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "title and author are required")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "owner account not found")
		}

		return nil, errors.Wrap(err, "failed to load owner account")
	}

	book := &entity.Book{
		UserID: input.UserID,
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
		Status: entity.StatusUnread,
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		srv.log(ctx).Error("Failed to add book", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add book")
	}

	srv.invalidateCollection(ctx, input.UserID)

	srv.log(ctx).Info("Book added",
		slog.Any("bookID", book.ID),
		slog.Any("userID", input.UserID),
		slog.String("title", input.Title),
	)

	return &usecase.AddBookOutput{Book: book}, nil
}

// GetBook retrieves a single book by its ID.
func (srv *bookService) GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	return book, nil
}

// UpdateReadingStatus flips a book between read and unread.
func (srv *bookService) UpdateReadingStatus(ctx context.Context, bookID uuid.UUID, status entity.ReadingStatus) error {
	if !status.Valid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, `status must be "read" or "unread"`)
	}

	// The owner is loaded before the update so their cached collection can be
	// invalidated afterwards.
	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}

		return errors.Wrap(err, "failed to find book")
	}

	if err := srv.bookRepo.UpdateStatus(ctx, bookID, status); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}

		srv.log(ctx).Error("Failed to update reading status", slog.Any("error", err))

		return errors.Wrap(err, "failed to update reading status")
	}

	srv.invalidateCollection(ctx, book.UserID)

	srv.log(ctx).Info("Reading status updated",
		slog.Any("bookID", bookID),
		slog.String("status", string(status)),
	)

	return nil
}

// DeleteBook removes a book from its owner's collection.
func (srv *bookService) DeleteBook(ctx context.Context, bookID uuid.UUID) error {
	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}

		return errors.Wrap(err, "failed to find book")
	}

	if err := srv.bookRepo.Delete(ctx, bookID); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
		}

		srv.log(ctx).Error("Failed to delete book", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete book")
	}

	srv.invalidateCollection(ctx, book.UserID)

	srv.log(ctx).Info("Book deleted", slog.Any("bookID", bookID))

	return nil
}

// ListCollection returns every book owned by the given user, serving from the
// cache when possible. Cache failures degrade to a database read.
func (srv *bookService) ListCollection(ctx context.Context, userID uuid.UUID) ([]*entity.Book, error) {
	if cached, err := srv.collectionCache.Get(ctx, userID); err != nil {
		srv.log(ctx).Warn("Collection cache read failed", slog.Any("error", err))
	} else if cached != nil {
		srv.log(ctx).Debug("Collection served from cache", slog.Any("userID", userID))

		return cached, nil
	}

	books, err := srv.bookRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection")
	}

	if err := srv.collectionCache.Set(ctx, userID, books); err != nil {
		srv.log(ctx).Warn("Collection cache write failed", slog.Any("error", err))
	}

	return books, nil
}

// LookupDetails queries the external catalog for the given title.
func (srv *bookService) LookupDetails(ctx context.Context, title string) (*entity.CatalogBook, error) {
	if title == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput, "title is required")
	}

	details, err := srv.catalog.Lookup(ctx, title)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up book details")
	}

	return details, nil
}

// invalidateCollection drops the owner's cached collection after a write.
// Failures are logged and swallowed: the cache entry expires on its own.
func (srv *bookService) invalidateCollection(ctx context.Context, userID uuid.UUID) {
	if err := srv.collectionCache.Invalidate(ctx, userID); err != nil {
		srv.log(ctx).Warn("Collection cache invalidation failed",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)
	}
}
