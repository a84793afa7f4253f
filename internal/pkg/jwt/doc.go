// Package jwt mints and verifies the session tokens handed out after a
// successful login code exchange.
//
// Claims carry the derived user identity (id, email, name, role) on top of
// the registered claims. The only signer is symmetric HS512. Context helpers
// move verified claims from the auth middleware to usecases.
package jwt
