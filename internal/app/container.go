// Package app wires adapters and services according to configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	cachemem "github.com/VVVARDAN/Caching-Service/internal/adapter/cache/memory"
	cachepg "github.com/VVVARDAN/Caching-Service/internal/adapter/cache/postgres"
	cacheredis "github.com/VVVARDAN/Caching-Service/internal/adapter/cache/redis"
	"github.com/VVVARDAN/Caching-Service/internal/adapter/events/nats"
	repomem "github.com/VVVARDAN/Caching-Service/internal/adapter/repository/memory"
	"github.com/VVVARDAN/Caching-Service/internal/adapter/repository/postgres"
	repos3 "github.com/VVVARDAN/Caching-Service/internal/adapter/repository/s3"
	"github.com/VVVARDAN/Caching-Service/internal/config"
	"github.com/VVVARDAN/Caching-Service/internal/identity"
	"github.com/VVVARDAN/Caching-Service/internal/port"
	"github.com/VVVARDAN/Caching-Service/internal/service"
)

type Container struct {
	Config *config.Config

	Pool  *pgxpool.Pool
	Redis *redis.Client
	Nats  *nats.Client
	Relay *nats.Relay

	RepoPayload port.PayloadRepository
	Outbox      port.OutboxRepository
	Publisher   port.Publisher
	Cache       port.TransformCache
	Tx          port.TxManager

	SvcPayloads port.Payloads
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	deriver, err := identity.NewDeriver(identity.Algo(cfg.HashAlgo))
	if err != nil {
		return nil, err
	}

	switch cfg.StoreBackend {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.Pool = pool
		c.RepoPayload = postgres.NewPayloadRepository(pool)
		c.Tx = postgres.NewTxManager(pool)
	case "memory":
		c.RepoPayload = repomem.NewPayloadRepository()
		c.Tx = repomem.NewTxManager()
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required for the s3 backend")
		}
		repo, err := repos3.New(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
		c.RepoPayload = repo
		c.Tx = repomem.NewTxManager()
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.StoreBackend)
	}

	switch cfg.TransformCacheBackend {
	case "postgres":
		if c.Pool == nil {
			return nil, fmt.Errorf("the postgres transform cache requires the postgres store backend")
		}
		c.Cache = cachepg.NewTransformCache(c.Pool)
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required for the redis transform cache")
		}
		c.Redis = cacheredis.NewClient(cfg.RedisAddr)
		c.Cache = cacheredis.NewTransformCache(c.Redis)
	case "memory", "":
		c.Cache = cachemem.NewTransformCache()
	default:
		return nil, fmt.Errorf("unknown transform cache backend: %q", cfg.TransformCacheBackend)
	}

	// Events exist only when a broker is configured: without NATS_URL no
	// outbox rows are written at all.
	if cfg.NatsURL != "" {
		nc, err := nats.NewClient(cfg.NatsURL)
		if err != nil {
			return nil, fmt.Errorf("connect nats: %w", err)
		}
		c.Nats = nc

		switch cfg.StoreBackend {
		case "s3":
			// No transactional store to anchor an outbox: publish
			// best-effort directly after the write.
			c.Publisher = nc
		default:
			if c.Pool != nil {
				c.Outbox = postgres.NewOutboxRepository(c.Pool)
			} else {
				c.Outbox = repomem.NewOutboxRepository()
			}
			interval, err := time.ParseDuration(cfg.OutboxInterval)
			if err != nil {
				interval = time.Second
			}
			c.Relay = nats.NewRelay(c.Outbox, nc, interval, cfg.OutboxBatch)
		}
	}

	c.SvcPayloads = service.NewPayloadsImpl(c.RepoPayload, c.Cache, c.Outbox, c.Publisher, deriver, c.Tx)

	return c, nil
}

// Close releases pooled connections. Safe to call once during shutdown.
func (c *Container) Close() {
	if c.Nats != nil {
		c.Nats.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
