package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// CodeGenerator defines an interface for generating one-time password codes.
type CodeGenerator interface {
	// Generate returns a new code or an error if the random source fails.
	Generate() (string, error)
}

// NumericCode generates cryptographically secure numeric OTP codes.
//
// Codes are six decimal digits and never start with a zero, so the string
// form survives naive numeric round-trips on the client.
type NumericCode struct{}

// NewNumericCode returns a new NumericCode generator.
func NewNumericCode() *NumericCode {
	return &NumericCode{}
}

// Generate produces a code uniformly distributed in [100000, 999999]
// using crypto/rand for cryptographic security.
func (nc *NumericCode) Generate() (string, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(num.Int64()+100000, 10), nil
}
