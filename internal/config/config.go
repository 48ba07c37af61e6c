package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	ServiceName     string `env:"SERVICE_NAME" env-default:"caching-service"`
	HTTPAddr        string `env:"HTTP_ADDR" env-default:":8080"`
	LogLevel        string `env:"LOG_LEVEL" env-default:"info"`
	ShutdownTimeout string `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	StoreBackend string `env:"STORE_BACKEND" env-default:"postgres"`
	DatabaseURL  string `env:"DATABASE_URL" env-default:""`

	S3Region   string `env:"S3_REGION" env-default:"us-east-1"`
	S3Bucket   string `env:"S3_BUCKET" env-default:""`
	S3Endpoint string `env:"S3_ENDPOINT" env-default:""`

	TransformCacheBackend string `env:"TRANSFORM_CACHE_BACKEND" env-default:"memory"`
	RedisAddr             string `env:"REDIS_ADDR" env-default:""`

	NatsURL        string `env:"NATS_URL" env-default:""`
	OutboxInterval string `env:"OUTBOX_INTERVAL" env-default:"1s"`
	OutboxBatch    int    `env:"OUTBOX_BATCH" env-default:"100"`

	HashAlgo string `env:"HASH_ALGO" env-default:"blake3"`

	RequestTimeout     string `env:"REQUEST_TIMEOUT" env-default:"30s"`
	MaxBodyBytes       int64  `env:"MAX_BODY_BYTES" env-default:"1048576"`
	RateRPS            int    `env:"RATE_RPS" env-default:"0"`
	RateBurst          int    `env:"RATE_BURST" env-default:"0"`
	CBThreshold        int    `env:"CB_THRESHOLD" env-default:"0"`
	CBTimeout          string `env:"CB_TIMEOUT" env-default:"30s"`
	CBHalfOpenMax      int    `env:"CB_HALF_OPEN_MAX" env-default:"1"`
	CacheControlMaxAge string `env:"CACHE_CONTROL_MAX_AGE" env-default:"3600"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
}

func Load() (*Config, error) {
	var cfg Config

	// ReadConfig reads from ENV and optionally from a file if needed.
	// We use ReadEnv to focus strictly on Environment Variables as per current project architecture.
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return &cfg, nil
}
