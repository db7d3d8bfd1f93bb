package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation is one persisted GST calculation belonging to a single user.
type Calculation struct {
	CreatedAt   time.Time
	ID          string
	UserID      string
	Amount      decimal.Decimal
	GSTRate     decimal.Decimal
	GSTAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// CalculationResult is the transient output of a computation. It is returned
// to the caller synchronously and never persisted as-is.
type CalculationResult struct {
	GSTAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// HistoryRow is a Calculation projected for summarization: no identity, no
// user field, timestamp rendered as ISO-8601 text.
type HistoryRow struct {
	Amount      decimal.Decimal
	GSTRate     decimal.Decimal
	GSTAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	Timestamp   string
}

// ToHistoryRow projects a Calculation for the summarizer.
func (c *Calculation) ToHistoryRow() HistoryRow {
	return HistoryRow{
		Amount:      c.Amount,
		GSTRate:     c.GSTRate,
		GSTAmount:   c.GSTAmount,
		TotalAmount: c.TotalAmount,
		Timestamp:   c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
