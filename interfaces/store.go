package interfaces

// SecretStore is the contract for the ephemeral one-time secret store.
//
// Implementations must serialize Put, Take, and internal expiry for the same
// id so that removal-by-read and removal-by-expiry cannot both succeed for a
// single entry. Entries move CREATED -> (TAKEN | EXPIRED); both states are
// terminal.
type SecretStore interface {
	// Put stores a secret and returns its receipt. The payload is assumed to
	// be non-empty after trimming; validation happens at the request
	// boundary. The only failure mode is id generation, which is fatal to
	// the operation. Put never blocks on I/O.
	Put(payload string) (StoredSecret, error)

	// Take atomically removes the entry for id and returns its payload. The
	// second result is false if the id never existed, was already taken, or
	// has expired; the three cases are indistinguishable.
	Take(id SecretID) (string, bool)

	// Len reports the number of live (unread, unexpired) entries.
	Len() int

	// Close stops background expiry. Unread entries are simply lost, per the
	// ephemeral contract.
	Close()
}
