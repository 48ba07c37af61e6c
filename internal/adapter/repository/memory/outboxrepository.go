package memory

import (
	"context"
	"sync"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

// OutboxRepository buffers events in memory for backends without a
// transactional store. Processed messages are removed, so the buffer only
// holds what the relay has not delivered yet.
type OutboxRepository struct {
	mu    sync.Mutex
	items []port.OutboxMessage
}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{}
}

func (r *OutboxRepository) SaveEvent(ctx context.Context, id, topic string, payload []byte) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, port.OutboxMessage{ID: id, Topic: topic, Payload: payload})
	return nil
}

func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]port.OutboxMessage, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.items)
	if limit > 0 && limit < n {
		n = limit
	}
	pending := make([]port.OutboxMessage, n)
	copy(pending, r.items[:n])
	if n == 0 {
		return nil, nil
	}
	return pending, nil
}

func (r *OutboxRepository) MarkProcessed(ctx context.Context, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Len reports the number of undelivered messages.
func (r *OutboxRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

var _ port.OutboxRepository = (*OutboxRepository)(nil)
