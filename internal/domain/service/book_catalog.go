package service

import (
	"context"

	"bookshelf/internal/domain/entity"
)

// BookCatalog looks up book metadata in an external catalog by free-text
// title and returns a best-effort single match.
type BookCatalog interface {
	// Lookup returns the first match for the title, or the catalog-not-found
	// domain error when the catalog has no entry for it.
	Lookup(ctx context.Context, title string) (*entity.CatalogBook, error)
}
