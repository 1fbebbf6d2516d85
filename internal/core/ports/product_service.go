package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// CreateProductInput carries the fields for a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
}

// ProductService implements catalog reads and admin-only mutations.
// Authorization is enforced at the boundary; the service still validates
// structure so a correctly-authorized caller cannot corrupt invariants.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Create fails with *domain.ValidationError before any store write.
	Create(ctx context.Context, actor domain.Caller, input CreateProductInput) (*domain.Product, error)
	// Update merges the present fields of patch. Fails with
	// domain.ErrEmptyPatch, *domain.ValidationError for a non-positive
	// price, or domain.ErrProductNotFound.
	Update(ctx context.Context, actor domain.Caller, id string, patch domain.ProductPatch) (*domain.Product, error)
	// Delete fails with domain.ErrProductNotFound when the id has no
	// record; repeating a delete yields the same failure, never an
	// internal error.
	Delete(ctx context.Context, actor domain.Caller, id string) error
}
