// Package model contains the GORM persistence models. They mirror the domain
// entities but carry storage concerns (column types, indexes) the domain
// must not know about.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the persisted form of entity.User. Username uniqueness is
// enforced here, at the schema level: the application-side existence check is
// only a cheap early exit, the unique index is the source of truth under
// concurrent creation.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"size:80;uniqueIndex;not null"`
	Salt           string    `gorm:"size:32;not null"`
	HashedPassword string    `gorm:"size:64;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the default table name.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the opaque identifier. IDs are never reused: a fresh
// UUID per row, independent of any deleted predecessor.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
