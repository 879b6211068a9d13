// Package storage implements the ephemeral one-time secret store.
//
// MemoryStore holds secrets in process memory only. Every entry is written
// once, read at most once, and evicted after a fixed TTL if never read. There
// is no persistence: a process restart loses all unread entries, which is the
// intended contract.
//
// # Expiry
//
// Rather than arming one timer per entry, a single sweep goroutine scans for
// entries past their deadline on a fixed interval. Take additionally checks
// the deadline under the store lock, so an expired entry is never returned
// between sweeps. Removal-by-read and removal-by-expiry are serialized by the
// store mutex and each entry is removed exactly once.
//
// # Privacy
//
// The store never records why a lookup missed. Never-existed, already-read,
// and expired ids all produce the same negative result, and no identifier or
// payload content is written to logs.
package storage
