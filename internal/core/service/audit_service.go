package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService persisting entries to repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event ports.AuditEventInput) error {
	entry := &domain.AuditEntry{
		ID:       uuid.NewString(),
		ActorID:  event.ActorID,
		Action:   event.Action,
		EntityID: event.EntityID,
		Detail:   event.Detail,
		At:       event.At,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	s.log.Debug().
		Str("action", event.Action).
		Str("entity_id", event.EntityID).
		Str("actor_id", event.ActorID).
		Msg("audit entry recorded")

	return nil
}
