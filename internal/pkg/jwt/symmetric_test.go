package jwt

import (
	"errors"
	"testing"
	"time"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fixedUUID struct {
	id string
}

func (g fixedUUID) Generate() string { return g.id }

var testSecret = []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

func newTestJWT(t *testing.T, now time.Time, ttl time.Duration) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:    testSecret,
		Issuer:    "canvassd",
		Audiences: []string{"canvassd-admin"},
		TTL:       ttl,
		Clock:     fixedClock{now: now},
		UUID:      fixedUUID{id: "token-id"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return s
}

func TestNewHS512_ShortSecret(t *testing.T) {
	// Act
	_, err := NewHS512(Config{Secret: []byte("too-short")})

	// Assert
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
	}
}

func TestSymmetric_GenerateVerify(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		// Arrange
		now := time.Now()
		s := newTestJWT(t, now, 24*time.Hour)
		sub := Subject{UserID: 1, Email: "admin@example.com", Name: "admin", Role: "admin"}

		// Act
		token, err := s.Generate(sub)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := s.Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if claims.UserID != 1 {
			t.Fatalf("expected user id 1, got %d", claims.UserID)
		}
		if claims.UserEmail != sub.Email {
			t.Fatalf("expected email %q, got %q", sub.Email, claims.UserEmail)
		}
		if claims.UserName != sub.Name {
			t.Fatalf("expected name %q, got %q", sub.Name, claims.UserName)
		}
		if claims.UserRole != "admin" {
			t.Fatalf("expected role admin, got %q", claims.UserRole)
		}
		if claims.Subject != "1" {
			t.Fatalf("expected subject 1, got %q", claims.Subject)
		}
		if claims.Issuer != "canvassd" {
			t.Fatalf("expected issuer canvassd, got %q", claims.Issuer)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		// Arrange
		past := time.Now().Add(-48 * time.Hour)
		s := newTestJWT(t, past, 24*time.Hour)

		token, err := s.Generate(Subject{UserID: 2, Email: "user@example.com", Role: "user"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		_, err = s.Verify(token)

		// Assert
		if !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		// Arrange
		s := newTestJWT(t, time.Now(), 24*time.Hour)

		token, err := s.Generate(Subject{UserID: 2, Email: "user@example.com", Role: "user"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		_, err = s.Verify(token + "x")

		// Assert
		if err == nil {
			t.Fatalf("expected tampered token to fail verification")
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		// Arrange
		s := newTestJWT(t, time.Now(), 24*time.Hour)

		other, err := NewHS512(Config{
			Secret:    []byte("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
			Issuer:    "canvassd",
			Audiences: []string{"canvassd-admin"},
			TTL:       24 * time.Hour,
			Clock:     fixedClock{now: time.Now()},
			UUID:      fixedUUID{id: "token-id"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		token, err := s.Generate(Subject{UserID: 1, Email: "admin@example.com", Role: "admin"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		_, err = other.Verify(token)

		// Assert
		if err == nil {
			t.Fatalf("expected token signed with another key to fail verification")
		}
	})
}
