package memory

import (
	"context"
	"sync"

	"github.com/minimart/storefront/internal/core/domain"
)

// CartStore is an in-memory CartRepository. Each user's cart is an
// independent immutable snapshot held in a sync.Map, so writers for
// different users never contend, and a replace is a single atomic swap —
// last write wins per completed request, as the repository observes them.
type CartStore struct {
	carts sync.Map // user id -> []domain.CartItem (treated as immutable)
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

func (s *CartStore) Get(_ context.Context, userID string) ([]domain.CartItem, error) {
	v, ok := s.carts.Load(userID)
	if !ok {
		// Lazy creation: a user with no cart yet has an empty one.
		return []domain.CartItem{}, nil
	}

	stored := v.([]domain.CartItem)
	out := make([]domain.CartItem, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *CartStore) Replace(_ context.Context, userID string, items []domain.CartItem) error {
	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)
	s.carts.Store(userID, snapshot)
	return nil
}

func (s *CartStore) Clear(_ context.Context, userID string) error {
	s.carts.Delete(userID)
	return nil
}
