package handler

import (
	"log/slog"
	"net/http"

	"bookshelf/internal/delivery/http/response"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for collection-related handlers.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

type addBookRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Year   string `json:"year"`
}

type updateStatusRequest struct {
	// The value check against the allowed statuses lives in the service.
	Status string `json:"status" validate:"required"`
}

// bookView is the wire representation of a book.
type bookView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Year       string `json:"year"`
	Status     string `json:"status"`
	CoverImage string `json:"cover_image,omitempty"`
	Summary    string `json:"summary,omitempty"`
}

// collectionEntry is the trimmed representation used in collection listings.
type collectionEntry struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Status string `json:"status"`
}

func toBookView(book *entity.Book) bookView {
	return bookView{
		ID:         book.ID.String(),
		Title:      book.Title,
		Author:     book.Author,
		Year:       book.Year,
		Status:     string(book.Status),
		CoverImage: book.CoverImage,
		Summary:    book.Summary,
	}
}

// AddBook handles the request to add a book to a collection.
func (h *BookHandler) AddBook(c echo.Context) error {
	var req addBookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user_id, title and author are required")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user_id must be a valid UUID")
	}

	output, err := h.uc.AddBook(c.Request().Context(), usecase.AddBookInput{
		UserID: userID,
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"book_id": output.Book.ID.String(),
	}, "Book added successfully")
}

// GetBook handles the request to retrieve a single book.
func (h *BookHandler) GetBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "book_id must be a valid UUID")
	}

	book, err := h.uc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookView(book), "Book retrieved successfully")
}

// UpdateReadingStatus handles the request to flip a book between read and unread.
func (h *BookHandler) UpdateReadingStatus(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "book_id must be a valid UUID")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "status is required")
	}

	if err := h.uc.UpdateReadingStatus(c.Request().Context(), bookID, entity.ReadingStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reading status updated")
}

// DeleteBook handles the request to remove a book.
func (h *BookHandler) DeleteBook(c echo.Context) error {
	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "book_id must be a valid UUID")
	}

	if err := h.uc.DeleteBook(c.Request().Context(), bookID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Book deleted successfully")
}

// GetDetails handles the request to fetch book details from the external catalog.
func (h *BookHandler) GetDetails(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return errors.Wrap(domainerrors.ErrInvalidInput, "title is required")
	}

	details, err := h.uc.LookupDetails(c.Request().Context(), title)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Book details retrieved successfully")
}

// GetCollection handles the request to list a user's collection.
func (h *BookHandler) GetCollection(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("user_id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user_id must be a valid UUID")
	}

	books, err := h.uc.ListCollection(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	collection := make([]collectionEntry, 0, len(books))
	for _, book := range books {
		collection = append(collection, collectionEntry{
			ID:     book.ID.String(),
			Title:  book.Title,
			Author: book.Author,
			Year:   book.Year,
			Status: string(book.Status),
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"collection": collection,
	}, "Collection retrieved successfully")
}
