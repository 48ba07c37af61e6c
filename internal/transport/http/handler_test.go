package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cachemem "github.com/VVVARDAN/Caching-Service/internal/adapter/cache/memory"
	repomem "github.com/VVVARDAN/Caching-Service/internal/adapter/repository/memory"
	"github.com/VVVARDAN/Caching-Service/internal/config"
	"github.com/VVVARDAN/Caching-Service/internal/identity"
	"github.com/VVVARDAN/Caching-Service/internal/service"
)

func newTestRouter(t *testing.T) (http.Handler, *repomem.PayloadRepository) {
	t.Helper()
	deriver, err := identity.NewDeriver(identity.AlgoBlake3)
	require.NoError(t, err)

	repo := repomem.NewPayloadRepository()
	svc := service.NewPayloadsImpl(
		repo,
		cachemem.NewTransformCache(),
		repomem.NewOutboxRepository(),
		nil,
		deriver,
		repomem.NewTxManager(),
	)

	cfg := &config.Config{
		MaxBodyBytes:   1 << 20,
		RequestTimeout: "5s",
	}
	return NewRouter(cfg, svc, nil), repo
}

func submit(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/payload", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitAndRetrieve(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := submit(t, router, `{"list_1": ["hello", "world"], "list_2": ["fast", "api"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var submitResp struct {
		Identifier string `json:"identifier"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitResp))
	require.Len(t, submitResp.Identifier, 64)

	req := httptest.NewRequest(http.MethodGet, "/payload/"+submitResp.Identifier, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)

	var getResp struct {
		Output string `json:"output"`
	}
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &getResp))
	assert.Equal(t, "FAST, HELLO, API, WORLD", getResp.Output)
}

func TestSubmitIsIdempotent(t *testing.T) {
	router, repo := newTestRouter(t)
	body := `{"list_1": ["hello", "world"], "list_2": ["fast", "api"]}`

	first := submit(t, router, body)
	second := submit(t, router, body)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, repo.Len())
}

func TestSubmitEmptyLists(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := submit(t, router, `{"list_1": [], "list_2": []}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Identifier string `json:"identifier"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/payload/"+resp.Identifier, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)
	assert.JSONEq(t, `{"output": ""}`, getRec.Body.String())
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := submit(t, router, `{"list_1": [`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestRetrieveUnknownIdentifier(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/payload/deadbeef", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var problem struct {
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, http.StatusNotFound, problem.Status)
	assert.Equal(t, "Payload not found.", problem.Detail)
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
