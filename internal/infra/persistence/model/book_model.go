package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookModel is the persisted form of entity.Book.
type BookModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Title      string    `gorm:"size:255;not null"`
	Author     string    `gorm:"size:255;not null"`
	Year       string    `gorm:"size:16"`
	Status     string    `gorm:"size:16;not null;default:unread"`
	CoverImage string
	Summary    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the default table name.
func (BookModel) TableName() string {
	return "books"
}

// BeforeCreate assigns the opaque identifier.
func (m *BookModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
