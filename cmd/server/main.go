package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VVVARDAN/Caching-Service/internal/app"
	"github.com/VVVARDAN/Caching-Service/internal/config"
	"github.com/VVVARDAN/Caching-Service/internal/pkg/logger"
	"github.com/VVVARDAN/Caching-Service/internal/pkg/tracing"
	transport "github.com/VVVARDAN/Caching-Service/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OTLPEndpoint != "" {
		shutdownTracing, err := tracing.Init(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(flushCtx)
		}()
	}

	c, err := app.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	var checks []transport.ReadinessCheck
	if c.Pool != nil {
		checks = append(checks, transport.ReadinessCheck{Name: "postgres", Check: c.Pool.Ping})
	}
	if c.Redis != nil {
		checks = append(checks, transport.ReadinessCheck{Name: "redis", Check: func(ctx context.Context) error {
			return c.Redis.Ping(ctx).Err()
		}})
	}
	if c.Nats != nil {
		checks = append(checks, transport.ReadinessCheck{Name: "nats", Check: func(context.Context) error {
			if !c.Nats.IsConnected() {
				return errors.New("nats disconnected")
			}
			return nil
		}})
	}

	if c.Redis != nil {
		transport.SetRedisClient(c.Redis)
	}
	if c.Relay != nil {
		go c.Relay.Run(ctx)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: transport.NewRouter(cfg, c.SvcPayloads, checks),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", slog.String("addr", cfg.HTTPAddr), slog.String("backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	timeout, err := time.ParseDuration(cfg.ShutdownTimeout)
	if err != nil {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
