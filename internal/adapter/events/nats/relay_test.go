package nats

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VVVARDAN/Caching-Service/internal/adapter/repository/memory"
)

type recordingSink struct {
	mu       sync.Mutex
	failNext bool
	subjects []string
}

func (s *recordingSink) Publish(subject string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNext {
		s.failNext = false
		return errors.New("connection lost")
	}
	s.subjects = append(s.subjects, subject)
	return nil
}

func TestRelayDrainsPending(t *testing.T) {
	ctx := context.Background()
	outbox := memory.NewOutboxRepository()
	require.NoError(t, outbox.SaveEvent(ctx, "1", "payload.stored", []byte(`{}`)))
	require.NoError(t, outbox.SaveEvent(ctx, "2", "payload.stored", []byte(`{}`)))

	sink := &recordingSink{}
	relay := NewRelay(outbox, sink, 0, 0)
	relay.drain(ctx)

	assert.Equal(t, []string{"payload.stored", "payload.stored"}, sink.subjects)

	pending, err := outbox.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRelayRetriesFailedPublish(t *testing.T) {
	ctx := context.Background()
	outbox := memory.NewOutboxRepository()
	require.NoError(t, outbox.SaveEvent(ctx, "1", "payload.stored", []byte(`{}`)))

	sink := &recordingSink{failNext: true}
	relay := NewRelay(outbox, sink, 0, 0)

	relay.drain(ctx)
	pending, err := outbox.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 1, "failed message stays pending")

	relay.drain(ctx)
	pending, err = outbox.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "delivered on the next tick")
}
