package ports

import (
	"context"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}

// AuditRecorder accepts audit events for asynchronous recording. Implementations
// must never block the calling request beyond a bounded enqueue.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
