// Package api defines the wire types shared by the secretdrop HTTP server
// and its clients.
package api

import (
	"errors"
	"time"
)

// ErrSecretNotFound is returned by clients when an id does not resolve to a
// live secret. The server deliberately does not distinguish never-existed,
// already-read, and expired.
var ErrSecretNotFound = errors.New("secret not found")

// CreateSecretRequest is the body of POST /api/v1/secret.
type CreateSecretRequest struct {
	// Secret is the text to share. Must be non-empty after trimming.
	Secret string `json:"secret"`
}

// CreateSecretResponse is returned on successful creation.
type CreateSecretResponse struct {
	// ID is the one-time token to exchange for the secret.
	ID string `json:"id"`

	// ExpiresAt is when the unread secret will be evicted.
	ExpiresAt time.Time `json:"expires_at"`
}

// RetrieveSecretResponse is returned on successful retrieval. The secret is
// gone from the server the moment this response is produced.
type RetrieveSecretResponse struct {
	Secret string `json:"secret"`
}
