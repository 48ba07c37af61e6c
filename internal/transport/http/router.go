package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/VVVARDAN/Caching-Service/internal/config"
	"github.com/VVVARDAN/Caching-Service/internal/port"
)

// NewRouter assembles the HTTP surface: the payload routes plus the
// operational endpoints every deployment carries.
func NewRouter(cfg *config.Config, svc port.Payloads, checks []ReadinessCheck) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(MetricsMiddleware)

	r.Get("/healthz", Healthz)
	r.Get("/readyz", Readyz(checks))
	r.Handle("/metrics", promhttp.Handler())

	h := NewPayloadHandler(svc)

	r.Group(func(r chi.Router) {
		r.Use(MaxBodySizeMiddleware(cfg.MaxBodyBytes))
		r.Use(RateLimitMiddleware(cfg.RateRPS, cfg.RateBurst))
		if cfg.CBThreshold > 0 {
			r.Use(CircuitBreakerMiddleware(cfg.CBThreshold, cfg.CBTimeout, cfg.CBHalfOpenMax))
		}
		r.Use(TimeoutMiddleware(cfg.RequestTimeout))

		r.Post("/payload", h.Submit)
		r.With(CacheMiddleware(cfg.CacheControlMaxAge)).Get("/payload/{identifier}", h.Get)
	})

	return otelhttp.NewHandler(r, "http.server")
}
