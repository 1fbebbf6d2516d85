package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/minimart/storefront/internal/core/domain"
)

const auditCollection = "audit_entries"

// AuditRepository persists audit trail entries to mongo.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID       string `bson:"_id"`
	ActorID  string `bson:"actor_id"`
	Action   string `bson:"action"`
	EntityID string `bson:"entity_id"`
	Detail   string `bson:"detail,omitempty"`
	At       int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := auditDoc{
		ID:       entry.ID,
		ActorID:  entry.ActorID,
		Action:   entry.Action,
		EntityID: entry.EntityID,
		Detail:   entry.Detail,
		At:       entry.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
