package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/VVVARDAN/Caching-Service/internal/pkg/errors"
	"github.com/VVVARDAN/Caching-Service/internal/port"
)

// PayloadHandler exposes the payload cache over HTTP.
type PayloadHandler struct {
	svc port.Payloads
}

func NewPayloadHandler(svc port.Payloads) *PayloadHandler {
	return &PayloadHandler{svc: svc}
}

// Submit handles POST /payload.
func (h *PayloadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req port.SubmitPayloadRequest
	if err := decodeJSONRequest(r, &req); err != nil {
		errors.WriteError(w, r, errors.New(http.StatusBadRequest, errors.CodeValidationFailed, "Invalid JSON body"))
		return
	}

	resp, err := h.svc.SubmitPayload(r.Context(), req)
	if err != nil {
		errors.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /payload/{identifier}.
func (h *PayloadHandler) Get(w http.ResponseWriter, r *http.Request) {
	req := port.GetPayloadRequest{
		Identifier: chi.URLParam(r, "identifier"),
	}

	resp, err := h.svc.GetPayload(r.Context(), req)
	if err != nil {
		errors.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
