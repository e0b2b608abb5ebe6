package usecase

import (
	"context"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddBookInput defines the data required to add a book to a collection.
type AddBookInput struct {
	UserID uuid.UUID
	Title  string
	Author string
	Year   string
}

// --- Output DTOs ---

// AddBookOutput returns the newly created book.
type AddBookOutput struct {
	Book *entity.Book
}

// BookUsecase defines the interface for collection-related business operations.
type BookUsecase interface {
	// AddBook records a new book in the owner's collection.
	AddBook(ctx context.Context, input AddBookInput) (*AddBookOutput, error)

	// GetBook retrieves a single book by its ID.
	GetBook(ctx context.Context, bookID uuid.UUID) (*entity.Book, error)

	// UpdateReadingStatus flips a book between read and unread.
	UpdateReadingStatus(ctx context.Context, bookID uuid.UUID, status entity.ReadingStatus) error

	// DeleteBook removes a book from its owner's collection.
	DeleteBook(ctx context.Context, bookID uuid.UUID) error

	// ListCollection returns every book owned by the given user.
	ListCollection(ctx context.Context, userID uuid.UUID) ([]*entity.Book, error)

	// LookupDetails queries the external catalog for the given title.
	LookupDetails(ctx context.Context, title string) (*entity.CatalogBook, error)
}
