package utils

import "github.com/google/uuid"

// UUIDGenerator produces the client-generated visit identifiers. Kept as a
// struct so services can take it as a dependency and tests can substitute
// deterministic IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random UUIDv4 string. Randomness, not time ordering,
// is the requirement: the identifier is an idempotency key, never a sort
// key.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
