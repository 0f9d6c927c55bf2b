package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

const auditCollection = "auth_audit"

// MongoAuditRepository appends authentication audit events. Write-only from
// the application's point of view; operators query the collection directly.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Action     string `bson:"action"`
	Username   string `bson:"username"`
	Outcome    string `bson:"outcome"`
	OccurredAt int64  `bson:"occurred_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Action:     event.Action,
		Username:   event.Username,
		Outcome:    event.Outcome,
		OccurredAt: event.OccurredAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
