package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for new accounts.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUID v7 string, falling back to a random v4 if the
// v7 constructor fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
