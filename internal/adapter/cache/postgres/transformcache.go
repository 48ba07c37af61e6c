// Package postgres memoizes single element transformations in the same
// database that stores the payloads.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

type TransformCache struct {
	DB *pgxpool.Pool
}

func NewTransformCache(pool *pgxpool.Pool) *TransformCache {
	return &TransformCache{DB: pool}
}

func (c *TransformCache) Get(ctx context.Context, input string) (string, bool, error) {
	var transformed string
	err := c.DB.QueryRow(ctx, "SELECT transformed FROM transform_cache WHERE input = $1", input).Scan(&transformed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return transformed, true, nil
}

// Put inserts the entry. Transformed values are deterministic, so a racing
// writer's row is as good as ours and the conflict is ignored.
func (c *TransformCache) Put(ctx context.Context, input, transformed string) error {
	_, err := c.DB.Exec(ctx,
		"INSERT INTO transform_cache (input, transformed) VALUES ($1, $2) ON CONFLICT (input) DO NOTHING",
		input, transformed)
	return err
}

var _ port.TransformCache = (*TransformCache)(nil)
