package postgres

import (
	"context"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"
	"bookshelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// FindByID retrieves a single book by its unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	if err := repo.db.WithContext(ctx).First(&bookM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// ListByUser retrieves every book owned by the given user, newest first.
func (repo *bookRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Book, error) {
	var bookModels []*model.BookModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list books by user")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// Create persists a new book entity.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// UpdateStatus changes the reading status of a book.
func (repo *bookRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReadingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reading status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes a book by its ID.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Author:     data.Author,
		Year:       data.Year,
		Status:     entity.ReadingStatus(data.Status),
		CoverImage: data.CoverImage,
		Summary:    data.Summary,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.StatusUnread
	}

	return &model.BookModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Title:      data.Title,
		Author:     data.Author,
		Year:       data.Year,
		Status:     string(status),
		CoverImage: data.CoverImage,
		Summary:    data.Summary,
	}
}
