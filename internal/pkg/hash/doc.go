// Package hash provides helpers for computing and verifying keyed hashes.
//
// Typical usage is message authentication: sign a payload with a server-side
// secret, hand the signature to the client, then verify the returned
// signature against a recomputed one. Implementations live in this package
// behind a small interface.
package hash
