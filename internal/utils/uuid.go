package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace identifiers.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 if the
// v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
