package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// CartRepository stores one cart per owning user id. Carts are always
// addressed by the owner's id — never by a caller-chosen cart key — which
// is what makes cross-user access structurally impossible.
type CartRepository interface {
	// Get returns the owner's cart lines in insertion order. A user with
	// no cart yet gets an empty slice, not an error.
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	// Replace swaps the full cart contents. Callers pass normalized
	// lines (quantity >= 1, unique product ids).
	Replace(ctx context.Context, userID string, items []domain.CartItem) error
	// Clear empties the owner's cart.
	Clear(ctx context.Context, userID string) error
}
