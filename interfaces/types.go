package interfaces

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidSecretID is returned when an identifier fails shape validation
// before it ever reaches the store.
var ErrInvalidSecretID = errors.New("invalid secret id")

// SecretID is an opaque token identifying a stored secret. It is generated by
// the store on insertion (128-bit random value rendered as a string) and is
// never reused.
type SecretID string

// ParseSecretID validates a caller-supplied identifier. It trims surrounding
// whitespace and rejects empty ids. It deliberately does not check whether
// the id resolves to a live entry.
func ParseSecretID(raw string) (SecretID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidSecretID
	}
	return SecretID(trimmed), nil
}

// String returns the id as a plain string.
func (id SecretID) String() string {
	return string(id)
}

// StoredSecret is the receipt returned when a secret is stored.
type StoredSecret struct {
	// ID is the token the holder exchanges for the secret, exactly once.
	ID SecretID

	// ExpiresAt is the deadline after which the unread secret is evicted.
	ExpiresAt time.Time
}
