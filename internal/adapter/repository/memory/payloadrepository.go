// Package memory provides in-memory implementations of the storage ports,
// used by the memory backend and as fakes in tests.
package memory

import (
	"context"
	"sync"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

type PayloadRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewPayloadRepository() *PayloadRepository {
	return &PayloadRepository{
		data: make(map[string]string),
	}
}

func (r *PayloadRepository) GetOrCreate(ctx context.Context, identifier, output string) (bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[identifier]; ok {
		return false, nil
	}
	r.data[identifier] = output
	return true, nil
}

func (r *PayloadRepository) Find(ctx context.Context, identifier string) (string, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	output, ok := r.data[identifier]
	if !ok {
		return "", port.ErrPayloadNotFound
	}
	return output, nil
}

// Len reports the number of stored payloads.
func (r *PayloadRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

var _ port.PayloadRepository = (*PayloadRepository)(nil)
