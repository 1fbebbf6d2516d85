package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/authz"
	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// AuditSink receives audit events for asynchronous persistence. The
// sharded dispatcher implements it; tests use stubs.
type AuditSink interface {
	Enqueue(event ports.AuditEventInput)
}

// nopSink discards events; used when auditing is disabled.
type nopSink struct{}

func (nopSink) Enqueue(ports.AuditEventInput) {}

// NopAuditSink is an AuditSink that drops everything.
var NopAuditSink AuditSink = nopSink{}

// ProductService implements catalog reads and admin mutations.
type ProductService struct {
	repo   ports.ProductRepository
	audit  AuditSink
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, audit AuditSink, logger zerolog.Logger) *ProductService {
	if audit == nil {
		audit = NopAuditSink
	}
	return &ProductService{repo: repo, audit: audit, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, actor domain.Caller, input ports.CreateProductInput) (*domain.Product, error) {
	// The router guard already rejected non-admins; this keeps the rule
	// enforced even for callers that bypass the HTTP layer.
	if err := authz.Check(actor, authz.ActionWriteProduct, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("actor_id", actor.ID).Msg("product created")
	s.audit.Enqueue(ports.AuditEventInput{
		ActorID:  actor.ID,
		Action:   "product.create",
		EntityID: created.ID,
		Detail:   created.Name,
		At:       now,
	})

	return created, nil
}

func (s *ProductService) Update(ctx context.Context, actor domain.Caller, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if err := authz.Check(actor, authz.ActionWriteProduct, ""); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return nil, &domain.ValidationError{Field: "price", Reason: "must be a positive number"}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(product)
	if err := product.Validate(); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Str("actor_id", actor.ID).Msg("product updated")
	s.audit.Enqueue(ports.AuditEventInput{
		ActorID:  actor.ID,
		Action:   "product.update",
		EntityID: id,
		At:       product.UpdatedAt,
	})

	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, actor domain.Caller, id string) error {
	if err := authz.Check(actor, authz.ActionWriteProduct, ""); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		return domain.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Str("actor_id", actor.ID).Msg("product deleted")
	s.audit.Enqueue(ports.AuditEventInput{
		ActorID:  actor.ID,
		Action:   "product.delete",
		EntityID: id,
		At:       time.Now().UTC(),
	})

	return nil
}
