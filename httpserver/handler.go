package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/secretdrop/secretdrop/api"
	"github.com/secretdrop/secretdrop/interfaces"
)

// maxBodySize is the maximum allowed request body size: 64KB of secret plus
// JSON overhead.
const maxBodySize = 64*1024 + 1024

// RequestError provides structured error information for HTTP responses.
// It includes both an HTTP status code and the underlying error.
type RequestError struct {
	// StatusCode is the HTTP status code to return.
	StatusCode int

	// Err is the underlying error.
	Err error
}

// Error returns the error message from the underlying error.
func (e *RequestError) Error() string {
	return e.Err.Error()
}

// Handler processes HTTP requests for the secretdrop service. It validates
// request shape at the boundary and forwards to the store, which owns all
// one-time and expiry semantics.
type Handler struct {
	store interfaces.SecretStore
	log   *slog.Logger
}

// NewHandler creates an HTTP request handler backed by the given store.
func NewHandler(store interfaces.SecretStore, log *slog.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

// HandleCreateSecret stores a one-time secret.
//
// URL format: POST /api/v1/secret
//
// Request body: {"secret": "..."} — must be non-empty after trimming.
//
// Response: 201 with JSON containing:
//   - id: the one-time token to exchange for the secret
//   - expires_at: deadline after which the unread secret is evicted
func (h *Handler) HandleCreateSecret(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req api.CreateSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Secret) == "" {
		http.Error(w, "Secret must not be empty", http.StatusBadRequest)
		return
	}

	stored, err := h.store.Put(req.Secret)
	if err != nil {
		h.log.Error("Failed to store secret", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := api.CreateSecretResponse{
		ID:        stored.ID.String(),
		ExpiresAt: stored.ExpiresAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "err", err)
	}
}

// HandleRetrieveSecret exchanges a token for its secret, exactly once.
//
// URL format: GET /api/v1/secret/{id}
//
// Response: 200 with JSON containing the secret text. The entry is removed
// atomically with the read. An id that never existed, was already read, or
// has expired uniformly yields 404 with no further detail — the negative
// outcome reveals nothing about prior history, so no reason is surfaced or
// logged.
func (h *Handler) HandleRetrieveSecret(w http.ResponseWriter, r *http.Request) {
	id, err := interfaces.ParseSecretID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Missing secret id", http.StatusBadRequest)
		return
	}

	payload, ok := h.store.Take(id)
	if !ok {
		http.Error(w, "Secret not found", http.StatusNotFound)
		return
	}

	response := api.RetrieveSecretResponse{Secret: payload}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "err", err)
	}
}
