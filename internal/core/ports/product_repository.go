package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// ProductRepository defines persistence for the catalog. List returns
// records in insertion order; each call produces a fresh snapshot, not a
// live cursor.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	// FindByID returns domain.ErrProductNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update replaces the stored record, matched by product.ID. Returns
	// domain.ErrProductNotFound when the id has no record.
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Delete reports whether a record existed and was removed. Deleting
	// an absent id is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
