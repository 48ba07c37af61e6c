package nats

import (
	"context"
	"log/slog"
	"time"

	"github.com/VVVARDAN/Caching-Service/internal/pkg/logger"
	"github.com/VVVARDAN/Caching-Service/internal/port"
)

// sink abstracts the broker connection so the relay can be tested without
// a running NATS server.
type sink interface {
	Publish(subject string, data []byte) error
}

// Relay drains the outbox: it polls pending messages, publishes them and
// marks them processed. A message that fails to publish stays pending and
// is retried on the next tick.
type Relay struct {
	outbox   port.OutboxRepository
	sink     sink
	interval time.Duration
	batch    int
}

func NewRelay(outbox port.OutboxRepository, s sink, interval time.Duration, batch int) *Relay {
	if interval <= 0 {
		interval = time.Second
	}
	if batch <= 0 {
		batch = 100
	}
	return &Relay{outbox: outbox, sink: s, interval: interval, batch: batch}
}

// Run blocks until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

func (r *Relay) drain(ctx context.Context) {
	l := logger.From(ctx)
	pending, err := r.outbox.ListPending(ctx, r.batch)
	if err != nil {
		l.Error("outbox list pending failed", slog.Any("error", err))
		return
	}
	for _, msg := range pending {
		if err := r.sink.Publish(msg.Topic, msg.Payload); err != nil {
			l.Warn("outbox publish failed", slog.String("id", msg.ID), slog.String("topic", msg.Topic), slog.Any("error", err))
			return
		}
		if err := r.outbox.MarkProcessed(ctx, msg.ID); err != nil {
			l.Error("outbox mark processed failed", slog.String("id", msg.ID), slog.Any("error", err))
			return
		}
	}
}
