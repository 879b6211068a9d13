package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretdrop/secretdrop/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := storage.NewMemoryStore(storage.Config{Log: logger})
	t.Cleanup(store.Close)

	srv, err := New(&HTTPServerConfig{
		Log:           logger,
		DrainDuration: 10 * time.Millisecond,
	}, NewHandler(store, logger))
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLivenessCheck(t *testing.T) {
	srv := newTestServer(t)
	w := get(t, srv.getRouter(), "/livez")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestDrainUndrainCycle(t *testing.T) {
	srv := newTestServer(t)
	router := srv.getRouter()

	assert.Equal(t, http.StatusOK, get(t, router, "/readyz").Code)

	w := get(t, router, "/drain")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"draining"}`, w.Body.String())

	assert.Equal(t, http.StatusServiceUnavailable, get(t, router, "/readyz").Code)

	// Draining twice reports the current state instead of toggling.
	w = get(t, router, "/drain")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"already draining"}`, w.Body.String())

	w = get(t, router, "/undrain")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/readyz").Code)
}
