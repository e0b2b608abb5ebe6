package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReadingStatus marks whether the owner has finished a book.
type ReadingStatus string

const (
	StatusRead   ReadingStatus = "read"
	StatusUnread ReadingStatus = "unread"
)

// Valid reports whether the status is one of the two allowed values.
func (s ReadingStatus) Valid() bool {
	return s == StatusRead || s == StatusUnread
}

// Book is a single entry in a user's collection.
type Book struct {
	ID         uuid.UUID
	UserID     uuid.UUID // The owning account. No ownership checks beyond this link.
	Title      string
	Author     string
	Year       string // Publication year as free text; may be empty.
	Status     ReadingStatus
	CoverImage string // URL of a cover thumbnail, if known.
	Summary    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CatalogBook is the best-effort match returned by an external catalog lookup.
// It is not persisted; clients decide whether to copy fields into a Book.
type CatalogBook struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	PublishedDate string `json:"published_date"`
	Summary       string `json:"summary"`
	CoverImage    string `json:"cover_image"`
}
