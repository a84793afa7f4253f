package hash

// Hash computes and verifies keyed hashes over arbitrary strings.
type Hash interface {
	// Hash returns the keyed hash of the input string.
	Hash(str string) ([]byte, error)

	// Verify reports whether the plaintext string matches the given hash.
	Verify(hashed, str string) bool
}
