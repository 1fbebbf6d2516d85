package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// CartService implements per-user cart access. Every operation is keyed
// by the authenticated caller's own id; handlers never pass a
// caller-supplied user id.
type CartService interface {
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	// Replace normalizes the lines (drops quantity <= 0, merges
	// duplicate product ids) and stores the result. A line with an empty
	// product id or a non-positive price snapshot fails with
	// *domain.ValidationError.
	Replace(ctx context.Context, userID string, items []domain.CartItem) ([]domain.CartItem, error)
	// Checkout clears the cart and records an audit entry.
	Checkout(ctx context.Context, userID string) error
}
