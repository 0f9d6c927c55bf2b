package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

type memAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *memAuditRepo) Insert(_ context.Context, event domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *memAuditRepo) forUser(username string) []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditEvent
	for _, e := range r.events {
		if e.Username == username {
			out = append(out, e)
		}
	}
	return out
}

func (r *memAuditRepo) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestDispatcher_RecordsEvents(t *testing.T) {
	repo := &memAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())
	d.Start()

	for i := 0; i < 10; i++ {
		d.Record(domain.AuditEvent{
			Action:   domain.AuditLogin,
			Username: "user-a",
			Outcome:  domain.OutcomeSuccess,
		})
	}
	d.Stop()

	if repo.total() != 10 {
		t.Fatalf("expected 10 events, got %d", repo.total())
	}
}

func TestDispatcher_PerUserOrderPreserved(t *testing.T) {
	repo := &memAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())
	d.Start()

	outcomes := []string{
		domain.OutcomeRejected,
		domain.OutcomeRejected,
		domain.OutcomeSuccess,
	}
	for _, outcome := range outcomes {
		d.Record(domain.AuditEvent{
			Action:   domain.AuditLogin,
			Username: "user-b",
			Outcome:  outcome,
		})
	}
	d.Stop()

	got := repo.forUser("user-b")
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	for i, e := range got {
		if e.Outcome != outcomes[i] {
			t.Fatalf("event %d out of order: expected %q, got %q", i, outcomes[i], e.Outcome)
		}
	}
}

// Events sitting in shard buffers at shutdown must still reach the repository.
func TestDispatcher_StopDrainsBufferedEvents(t *testing.T) {
	repo := &memAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	// Buffer before any worker runs so every event is queued, then start and
	// immediately stop.
	for i := 0; i < 25; i++ {
		d.Record(domain.AuditEvent{
			Action:   domain.AuditRegister,
			Username: fmt.Sprintf("user-%d", i),
			Outcome:  domain.OutcomeSuccess,
		})
	}
	d.Start()
	d.Stop()

	if repo.total() != 25 {
		t.Fatalf("expected 25 events after Stop, got %d", repo.total())
	}
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := NewDispatcher(2, &memAuditRepo{}, zerolog.Nop())
	d.Start()
	d.Stop()
	d.Stop()
}
