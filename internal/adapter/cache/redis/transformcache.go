package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

// TransformCache memoizes single element transformations in Redis. Entries
// are set without expiry: transformed values are deterministic, so they
// never go stale.
type TransformCache struct {
	client *redis.Client
}

func NewTransformCache(client *redis.Client) *TransformCache {
	return &TransformCache{client: client}
}

// key digests the raw input. Inputs are arbitrary user strings and can be
// long or contain anything, so they are hashed rather than embedded.
func key(input string) string {
	sum := sha256.Sum256([]byte(input))
	return "transform:" + hex.EncodeToString(sum[:])
}

func (c *TransformCache) Get(ctx context.Context, input string) (string, bool, error) {
	val, err := c.client.Get(ctx, key(input)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (c *TransformCache) Put(ctx context.Context, input, transformed string) error {
	return c.client.Set(ctx, key(input), transformed, 0).Err()
}

var _ port.TransformCache = (*TransformCache)(nil)
