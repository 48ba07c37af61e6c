package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

func TestPayloadRepositoryGetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewPayloadRepository()

	created, err := repo.GetOrCreate(ctx, "id-1", "OUT")
	require.NoError(t, err)
	assert.True(t, created)

	// Second write with a different output is a no-op.
	created, err = repo.GetOrCreate(ctx, "id-1", "OTHER")
	require.NoError(t, err)
	assert.False(t, created)

	output, err := repo.Find(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "OUT", output)
	assert.Equal(t, 1, repo.Len())
}

func TestPayloadRepositoryFindMissing(t *testing.T) {
	repo := NewPayloadRepository()

	_, err := repo.Find(context.Background(), "missing")
	assert.ErrorIs(t, err, port.ErrPayloadNotFound)
}

func TestPayloadRepositoryConcurrentGetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewPayloadRepository()

	const writers = 16
	var wg sync.WaitGroup
	createdCount := make(chan bool, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.GetOrCreate(ctx, "same", "OUT")
			assert.NoError(t, err)
			createdCount <- created
		}()
	}
	wg.Wait()
	close(createdCount)

	var wins int
	for created := range createdCount {
		if created {
			wins++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, repo.Len())
}

func TestOutboxRepositoryFlow(t *testing.T) {
	ctx := context.Background()
	outbox := NewOutboxRepository()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("evt-%d", i)
		require.NoError(t, outbox.SaveEvent(ctx, id, "payload.stored", []byte(`{}`)))
	}

	pending, err := outbox.ListPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "evt-0", pending[0].ID)

	require.NoError(t, outbox.MarkProcessed(ctx, "evt-0"))

	pending, err = outbox.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "evt-1", pending[0].ID)
	assert.Equal(t, "evt-2", pending[1].ID)
}

func TestOutboxRepositoryDropsProcessed(t *testing.T) {
	ctx := context.Background()
	outbox := NewOutboxRepository()

	require.NoError(t, outbox.SaveEvent(ctx, "evt-0", "payload.stored", []byte(`{}`)))
	require.NoError(t, outbox.SaveEvent(ctx, "evt-1", "payload.stored", []byte(`{}`)))
	require.Equal(t, 2, outbox.Len())

	require.NoError(t, outbox.MarkProcessed(ctx, "evt-0"))
	require.NoError(t, outbox.MarkProcessed(ctx, "evt-1"))

	// Delivered messages leave the buffer instead of lingering as flags.
	assert.Equal(t, 0, outbox.Len())

	pending, err := outbox.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestTxManagerRunsCallback(t *testing.T) {
	var ran bool
	err := NewTxManager().WithTx(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}
