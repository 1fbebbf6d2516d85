package ports

import (
	"context"
	"time"
)

// AuditEventInput is the DTO passed from the dispatcher to AuditService.
type AuditEventInput struct {
	ActorID  string
	Action   string
	EntityID string
	Detail   string
	At       time.Time
}

// AuditService persists a single audit event. Failures are logged by the
// dispatcher, never surfaced to the request that produced the event.
type AuditService interface {
	Record(ctx context.Context, event AuditEventInput) error
}
