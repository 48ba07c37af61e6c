// Package memory provides an in-memory transform memo cache.
package memory

import (
	"context"
	"sync"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

type TransformCache struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewTransformCache() *TransformCache {
	return &TransformCache{
		data: make(map[string]string),
	}
}

func (c *TransformCache) Get(ctx context.Context, input string) (string, bool, error) {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	transformed, ok := c.data[input]
	return transformed, ok, nil
}

func (c *TransformCache) Put(ctx context.Context, input, transformed string) error {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[input] = transformed
	return nil
}

var _ port.TransformCache = (*TransformCache)(nil)
