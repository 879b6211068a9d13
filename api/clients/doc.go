// Package clients provides Go clients for the secretdrop API.
//
// SecretClient talks to a running server over HTTP; MockSecretProvider stands
// in for it in tests.
package clients
