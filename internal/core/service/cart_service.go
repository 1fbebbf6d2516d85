package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// CartService implements per-user cart access. Ownership is structural:
// every operation takes the authenticated caller's own id, resolved by
// the transport layer, never a caller-supplied key.
type CartService struct {
	repo   ports.CartRepository
	audit  AuditSink
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, audit AuditSink, logger zerolog.Logger) *CartService {
	if audit == nil {
		audit = NopAuditSink
	}
	return &CartService{repo: repo, audit: audit, logger: logger}
}

func (s *CartService) Get(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.repo.Get(ctx, userID)
}

// Replace stores the normalized cart and returns it. Lines that resolve
// to quantity <= 0 are dropped rather than stored; duplicate product ids
// are merged. Snapshot fields are checked before any write.
func (s *CartService) Replace(ctx context.Context, userID string, items []domain.CartItem) ([]domain.CartItem, error) {
	normalized := domain.NormalizeCart(items)
	for _, item := range normalized {
		if item.ProductID == "" {
			return nil, &domain.ValidationError{Field: "product_id", Reason: "must not be empty"}
		}
		if item.Price <= 0 {
			return nil, &domain.ValidationError{Field: "price", Reason: "must be a positive number"}
		}
	}

	if err := s.repo.Replace(ctx, userID, normalized); err != nil {
		return nil, fmt.Errorf("replace cart: %w", err)
	}
	return normalized, nil
}

// Checkout empties the cart and records the event. The cart is the only
// state this demo mutates on checkout.
func (s *CartService) Checkout(ctx context.Context, userID string) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Msg("cart checked out")
	s.audit.Enqueue(ports.AuditEventInput{
		ActorID:  userID,
		Action:   "cart.checkout",
		EntityID: userID,
		At:       time.Now().UTC(),
	})
	return nil
}
