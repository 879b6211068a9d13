/*
Package httpserver hosts the secretdrop one-time secret sharing API.

The server is thin plumbing around the ephemeral store: it validates request
shape, forwards to the store, and shapes JSON responses. All single-read and
expiry semantics live in the storage package.

API Endpoints:

  - POST /api/v1/secret - Store a secret, returns its one-time id and expiry
  - GET /api/v1/secret/{id} - Exchange an id for its secret, exactly once
  - GET /livez - Liveness check
  - GET /readyz - Readiness check
  - GET /drain - Gracefully mark server as not ready
  - GET /undrain - Mark server as ready

A retrieval miss is always reported as a plain 404, whether the id never
existed, was already claimed, or expired. The server never logs or surfaces
which of the three happened.

Example usage:

	logger := common.SetupLogger(&common.LoggingOpts{Service: "secretdrop"})
	store := storage.NewMemoryStore(storage.Config{Log: logger})
	defer store.Close()

	handler := httpserver.NewHandler(store, logger)
	config := &httpserver.HTTPServerConfig{
		ListenAddr:               ":8080",
		MetricsAddr:              ":8090",
		Log:                      logger,
		DrainDuration:            30 * time.Second,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}

	server, err := httpserver.New(config, handler)
	if err != nil {
		log.Fatal(err)
	}
	server.RunInBackground()
*/
package httpserver
