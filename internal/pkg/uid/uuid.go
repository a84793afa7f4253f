package uid

import "github.com/google/uuid"

// UUID generates string identifiers used for correlation IDs and token IDs.
// Version 7 keeps them roughly time-ordered.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUIDv7 string, falling back to v4 if the random
// source fails.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
