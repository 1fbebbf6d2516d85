package memory

import (
	"context"
	"sync"

	"github.com/minimart/storefront/internal/core/domain"
)

// ProductStore is an in-memory ProductRepository. A separate order slice
// preserves insertion order for List; each List call returns a fresh
// snapshot, never a live view.
type ProductStore struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Product
	order []string
}

func NewProductStore() *ProductStore {
	return &ProductStore{byID: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	return &clone
}

func (s *ProductStore) List(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out, nil
}

func (s *ProductStore) FindByID(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(product), nil
}

func (s *ProductStore) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneProduct(product)
	s.byID[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return cloneProduct(stored), nil
}

func (s *ProductStore) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}

	stored := cloneProduct(product)
	s.byID[stored.ID] = stored
	return cloneProduct(stored), nil
}

func (s *ProductStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false, nil
	}

	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
