// Command secretdrop-server runs the one-time secret sharing HTTP API.
//
// A secret submitted via POST /api/v1/secret is held in memory only, claimed
// at most once via GET /api/v1/secret/{id}, and evicted unread after the
// configured TTL (default 5 minutes).
package main
