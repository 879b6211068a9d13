// Package interfaces defines core types and contracts for the secretdrop
// service, separating interface definitions from implementations.
//
// # Store Contract
//
// SecretStore: The ephemeral one-time store. Entries are written once via Put,
// consumed at most once via Take, and evicted when their TTL elapses. An id
// that was never issued, was already taken, or has expired is uniformly
// reported as absent; callers cannot distinguish the three cases.
//
// # Core Types
//
//   - SecretID: opaque random identifier issued by the store on Put
//   - StoredSecret: receipt returned by Put (id plus expiry deadline)
//
// The package is intentionally dependency-free so that every other package
// can import it without cycles.
package interfaces
