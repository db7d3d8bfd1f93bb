package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID record identifiers. ULIDs sort
// lexicographically by creation time, which keeps the created_at/id tiebreak
// in ListRecent stable.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
