package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetRateLimiter(t *testing.T) {
	t.Helper()
	rateMu.Lock()
	rateByIP = map[string]*rateState{}
	rateLastSweep = time.Time{}
	rateMu.Unlock()
	t.Cleanup(func() {
		rateMu.Lock()
		rateByIP = map[string]*rateState{}
		rateLastSweep = time.Time{}
		rateMu.Unlock()
	})
}

func rateLimitedOK(limit int) http.Handler {
	return RateLimitMiddleware(limit, limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRateLimitFallbackRejectsOverLimit(t *testing.T) {
	resetRateLimiter(t)
	handler := rateLimitedOK(2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/payload/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitFallbackEvictsStaleClients(t *testing.T) {
	resetRateLimiter(t)

	// A client whose window ended long ago must not occupy the map forever.
	rateMu.Lock()
	rateByIP["10.0.0.9:999"] = &rateState{windowStart: time.Now().Add(-2 * rateSweepInterval), count: 1}
	rateMu.Unlock()

	handler := rateLimitedOK(5)
	req := httptest.NewRequest(http.MethodGet, "/payload/x", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rateMu.Lock()
	defer rateMu.Unlock()
	_, stale := rateByIP["10.0.0.9:999"]
	_, active := rateByIP["10.0.0.1:1234"]
	assert.False(t, stale, "stale entry swept")
	assert.True(t, active, "current client tracked")
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	resetRateLimiter(t)
	handler := rateLimitedOK(0)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/payload/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
