package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/VVVARDAN/Caching-Service/internal/domain"
	"github.com/VVVARDAN/Caching-Service/internal/identity"
	"github.com/VVVARDAN/Caching-Service/internal/pkg/errors"
	"github.com/VVVARDAN/Caching-Service/internal/pkg/logger"
	"github.com/VVVARDAN/Caching-Service/internal/port"
	"github.com/VVVARDAN/Caching-Service/internal/transform"
)

// PayloadsImpl implements port.Payloads. Event delivery is optional: a nil
// Outbox and Publisher disable it entirely; Outbox routes events through the
// transactional outbox, Publisher sends them best-effort after the commit
// (for backends without a transactional store).
type PayloadsImpl struct {
	PayloadRepo port.PayloadRepository
	Cache       port.TransformCache
	Outbox      port.OutboxRepository
	Publisher   port.Publisher
	deriver     *identity.Deriver
	txManager   port.TxManager
}

func NewPayloadsImpl(payloadRepo port.PayloadRepository, cache port.TransformCache, outbox port.OutboxRepository, publisher port.Publisher, deriver *identity.Deriver, txManager port.TxManager) *PayloadsImpl {
	return &PayloadsImpl{
		PayloadRepo: payloadRepo,
		Cache:       cache,
		Outbox:      outbox,
		Publisher:   publisher,
		deriver:     deriver,
		txManager:   txManager,
	}
}

func (s *PayloadsImpl) SubmitPayload(ctx context.Context, req port.SubmitPayloadRequest) (resp port.SubmitPayloadResponse, err error) {
	l := logger.From(ctx).With(slog.String("service", "Payloads"), slog.String("method", "SubmitPayload"))
	if err = req.Validate(); err != nil {
		l.Warn("Validation failed", slog.Any("error", err))
		return resp, errors.New(http.StatusBadRequest, errors.CodeValidationFailed, err.Error())
	}

	output := transform.Merge(s.transformAll(ctx, req.List1), s.transformAll(ctx, req.List2))
	id := s.deriver.Derive(req.List1, req.List2).String()

	created, err := s.storePayload(ctx, id, output)
	if err != nil {
		l.Error("Store failed", slog.String("identifier", id), slog.Any("error", err))
		return resp, errors.Wrap(err, http.StatusServiceUnavailable, errors.CodeStoreUnavailable)
	}
	if created {
		payloadSubmissions.WithLabelValues("created").Inc()
		l.Info("Payload stored", slog.String("identifier", id))
	} else {
		payloadSubmissions.WithLabelValues("deduplicated").Inc()
		l.Debug("Payload deduplicated", slog.String("identifier", id))
	}

	resp.Identifier = id
	return resp, nil
}

func (s *PayloadsImpl) GetPayload(ctx context.Context, req port.GetPayloadRequest) (resp port.GetPayloadResponse, err error) {
	l := logger.From(ctx).With(slog.String("service", "Payloads"), slog.String("method", "GetPayload"))
	if err = req.Validate(); err != nil {
		l.Warn("Validation failed", slog.Any("error", err))
		return resp, errors.New(http.StatusBadRequest, errors.CodeValidationFailed, err.Error())
	}

	output, err := s.PayloadRepo.Find(ctx, req.Identifier)
	if err != nil {
		if stderrors.Is(err, port.ErrPayloadNotFound) {
			return resp, errors.New(http.StatusNotFound, errors.CodeNotFound, "Payload not found.")
		}
		l.Error("Find failed", slog.String("identifier", req.Identifier), slog.Any("error", err))
		return resp, errors.Wrap(err, http.StatusServiceUnavailable, errors.CodeStoreUnavailable)
	}

	resp.Output = output
	return resp, nil
}

// storePayload writes the row and, on first creation, an outbox event in the
// same transaction. Duplicate submissions commit nothing new. Without an
// outbox the event goes out best-effort through the direct publisher; a
// failed publish is logged, never surfaced.
func (s *PayloadsImpl) storePayload(ctx context.Context, id, output string) (bool, error) {
	var created bool
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.PayloadRepo.GetOrCreate(ctx, id, output)
		if err != nil {
			return err
		}
		if !created || s.Outbox == nil {
			return nil
		}
		event, err := json.Marshal(domain.PayloadStored{Identifier: id, Output: output})
		if err != nil {
			return err
		}
		return s.Outbox.SaveEvent(ctx, uuid.NewString(), domain.TopicPayloadStored, event)
	})
	if err == nil && created && s.Outbox == nil && s.Publisher != nil {
		event := domain.PayloadStored{Identifier: id, Output: output}
		if pubErr := s.Publisher.PublishPayloadStored(ctx, event); pubErr != nil {
			logger.From(ctx).Warn("payload.stored publish failed", slog.String("identifier", id), slog.Any("error", pubErr))
		}
	}
	return created, err
}

// transformAll transforms every element, consulting the memo cache first.
// Cache failures degrade to computing locally and never fail the request.
func (s *PayloadsImpl) transformAll(ctx context.Context, list []string) []string {
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = s.transformOne(ctx, item)
	}
	return out
}

func (s *PayloadsImpl) transformOne(ctx context.Context, input string) string {
	cached, ok, err := s.Cache.Get(ctx, input)
	switch {
	case err != nil:
		transformCacheLookups.WithLabelValues("error").Inc()
		logger.From(ctx).Warn("transform cache get failed", slog.Any("error", err))
	case ok:
		transformCacheLookups.WithLabelValues("hit").Inc()
		return cached
	default:
		transformCacheLookups.WithLabelValues("miss").Inc()
	}

	result := transform.Apply(input)
	if err := s.Cache.Put(ctx, input, result); err != nil {
		logger.From(ctx).Warn("transform cache put failed", slog.Any("error", err))
	}
	return result
}

var _ port.Payloads = (*PayloadsImpl)(nil)
