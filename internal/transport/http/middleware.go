package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/VVVARDAN/Caching-Service/internal/pkg/circuitbreaker"
	"github.com/VVVARDAN/Caching-Service/internal/pkg/errors"
)

func decodeJSONRequest(r *http.Request, out interface{}) error {
	if r.Body == nil {
		return io.EOF
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return io.EOF
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(body, &obj); err == nil {
		normalized := make(map[string]interface{}, len(obj))
		for k, v := range obj {
			normalized[k] = v
		}
		for k, v := range obj {
			lower := strings.ToLower(k)
			if lower != k {
				if _, exists := normalized[lower]; !exists {
					normalized[lower] = v
				}
			}
		}
		body, err = json.Marshal(normalized)
		if err != nil {
			return err
		}
	}
	return json.Unmarshal(body, out)
}

func CacheMiddleware(ttl string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ttl != "" {
				w.Header().Set("Cache-Control", "public, max-age="+ttl)
			}
			next.ServeHTTP(w, r)
		})
	}
}

type rateState struct {
	windowStart time.Time
	count       int
}

// rateSweepInterval bounds the fallback map: entries whose window went
// stale this long ago are evicted on the next request.
const rateSweepInterval = time.Minute

var (
	rateMu        sync.Mutex
	rateByIP      = map[string]*rateState{}
	rateLastSweep time.Time
	redisClient   *redis.Client
)

func sweepStaleRateStates(now time.Time) {
	if now.Sub(rateLastSweep) < rateSweepInterval {
		return
	}
	rateLastSweep = now
	for key, state := range rateByIP {
		if now.Sub(state.windowStart) >= rateSweepInterval {
			delete(rateByIP, key)
		}
	}
}

func SetRedisClient(c *redis.Client) {
	redisClient = c
}

func RateLimitMiddleware(rps, burst int) func(http.Handler) http.Handler {
	max := rps
	if burst > max {
		max = burst
	}
	if max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			now := time.Now()
			if redisClient != nil {
				key := "rate:" + ip
				ctx := context.Background()
				count, err := redisClient.Incr(ctx, key).Result()
				if err == nil {
					_ = redisClient.Expire(ctx, key, time.Second).Err()
					if int(count) > max {
						errors.WriteError(w, r, errors.New(http.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded"))
						return
					}
					next.ServeHTTP(w, r)
					return
				}
			}

			rateMu.Lock()
			sweepStaleRateStates(now)
			state, ok := rateByIP[ip]
			if !ok {
				state = &rateState{windowStart: now}
				rateByIP[ip] = state
			}
			if now.Sub(state.windowStart) >= time.Second {
				state.windowStart = now
				state.count = 0
			}
			state.count++
			over := state.count > max
			rateMu.Unlock()

			if over {
				errors.WriteError(w, r, errors.New(http.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// TimeoutMiddleware wraps handler with a timeout context.
// Uses Go's http.TimeoutHandler for proper timeout handling.
func TimeoutMiddleware(timeout string) func(http.Handler) http.Handler {
	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		d = 30 * time.Second // default timeout
	}
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, `{"type":"about:blank","title":"Gateway Timeout","status":504,"detail":"Request timed out"}`)
	}
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func MaxBodySizeMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				errors.WriteError(w, r, errors.New(http.StatusRequestEntityTooLarge, "Payload Too Large", fmt.Sprintf("Request body too large (max %d bytes)", limit)))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

func CircuitBreakerMiddleware(threshold int, timeout string, halfOpenMax int) func(http.Handler) http.Handler {
	d, err := time.ParseDuration(timeout)
	if err != nil {
		d = 30 * time.Second
	}
	breaker := circuitbreaker.NewBreaker(threshold, d, halfOpenMax)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !breaker.Allow() {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(d.Seconds())))
				errors.WriteError(w, r, errors.New(http.StatusServiceUnavailable, "Service Unavailable", "Circuit breaker is open"))
				return
			}

			sw := &statusResponseWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			if sw.status >= 500 {
				breaker.RecordFailure()
			} else {
				breaker.RecordSuccess()
			}
		})
	}
}
