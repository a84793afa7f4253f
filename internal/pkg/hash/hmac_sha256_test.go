package hash

import (
	"encoding/hex"
	"testing"
)

func TestHMACSHA256_Hash(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		// Arrange
		h := NewHMACSHA256("secret")

		// Act
		first, err := h.Hash("payload")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := h.Hash("payload")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if string(first) != string(second) {
			t.Fatalf("expected identical hashes, got %q and %q", first, second)
		}
		if _, err := hex.DecodeString(string(first)); err != nil {
			t.Fatalf("expected hex output, got %q", first)
		}
	})

	t.Run("SecretChangesOutput", func(t *testing.T) {
		// Arrange
		a := NewHMACSHA256("secret-a")
		b := NewHMACSHA256("secret-b")

		// Act
		hashA, _ := a.Hash("payload")
		hashB, _ := b.Hash("payload")

		// Assert
		if string(hashA) == string(hashB) {
			t.Fatalf("expected different hashes for different secrets")
		}
	})
}

func TestHMACSHA256_Verify(t *testing.T) {
	t.Run("Matches", func(t *testing.T) {
		// Arrange
		h := NewHMACSHA256("secret")
		hashed, _ := h.Hash("user@example.com.123456.1700000000000")

		// Act
		ok := h.Verify(string(hashed), "user@example.com.123456.1700000000000")

		// Assert
		if !ok {
			t.Fatalf("expected hash to verify against original payload")
		}
	})

	t.Run("TamperedPayload", func(t *testing.T) {
		// Arrange
		h := NewHMACSHA256("secret")
		hashed, _ := h.Hash("user@example.com.123456.1700000000000")

		// Act
		ok := h.Verify(string(hashed), "user@example.com.654321.1700000000000")

		// Assert
		if ok {
			t.Fatalf("expected tampered payload to fail verification")
		}
	})

	t.Run("WrongLengthHash", func(t *testing.T) {
		// Arrange
		h := NewHMACSHA256("secret")

		// Act
		ok := h.Verify("abc", "payload")

		// Assert
		if ok {
			t.Fatalf("expected truncated hash to fail verification")
		}
	})
}
