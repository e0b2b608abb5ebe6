package repository

import (
	"context"
	"errors"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is a domain-specific error returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// FindByID retrieves a single book by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// ListByUser retrieves every book owned by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Book, error)

	// Create persists a new book entity to the storage.
	Create(ctx context.Context, book *entity.Book) error

	// UpdateStatus changes the reading status of a book.
	// Returns ErrBookNotFound if no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReadingStatus) error

	// Delete removes a book. Returns ErrBookNotFound if the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
