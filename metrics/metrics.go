// Package metrics exposes Prometheus counters for the secret store and a
// standalone metrics server, kept off the API listener so operational
// scraping never contends with request traffic.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SecretsCreated counts secrets accepted by the store.
	SecretsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "secretdrop_secrets_created_total",
		Help: "Number of secrets stored.",
	})

	// SecretsClaimed counts secrets consumed by a successful read.
	SecretsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "secretdrop_secrets_claimed_total",
		Help: "Number of secrets retrieved (burned on read).",
	})

	// SecretsExpired counts secrets evicted unread by the TTL sweep.
	SecretsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "secretdrop_secrets_expired_total",
		Help: "Number of secrets evicted unread after their TTL elapsed.",
	})

	// SecretsLive tracks entries currently held in memory.
	SecretsLive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "secretdrop_secrets_live",
		Help: "Number of live (unread, unexpired) secrets in the store.",
	})
)

// MetricsServer serves the Prometheus scrape endpoint on its own listener.
type MetricsServer struct {
	name string
	srv  *http.Server
}

// New creates a metrics server for the given service name listening on addr.
// An empty addr is allowed; the caller simply never starts the server.
func New(name, addr string) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		name: name,
		srv: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}, nil
}

// ListenAndServe blocks serving the scrape endpoint until Shutdown.
func (m *MetricsServer) ListenAndServe() error {
	return m.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
