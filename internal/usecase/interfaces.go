package usecase

import (
	"context"
	"time"

	"github.com/gstmate/gstmate/internal/domain"
)

// CalculationRepository defines data access for calculation history.
type CalculationRepository interface {
	// Append stores a calculation for its user. The repository assigns the
	// record identifier and the storage backend assigns the timestamp.
	Append(ctx context.Context, calc *domain.Calculation) error
	// ListRecent returns up to limit calculations for a user, most recent
	// first. An empty history is an empty slice, not an error.
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Calculation, error)
}

// Summarizer produces a natural-language summary of a calculation history.
type Summarizer interface {
	Summarize(ctx context.Context, rows []domain.HistoryRow) (string, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
