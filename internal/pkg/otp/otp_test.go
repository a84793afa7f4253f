package otp

import (
	"strconv"
	"testing"
)

func TestNumericCode_Generate(t *testing.T) {
	// Arrange
	gen := NewNumericCode()

	for range 1000 {
		// Act
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if len(code) != 6 {
			t.Fatalf("expected 6 digit code, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("expected numeric code, got %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of range [100000, 999999]", n)
		}
	}
}
