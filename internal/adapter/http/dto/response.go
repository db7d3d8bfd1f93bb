package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gstmate/gstmate/internal/domain"
)

// ComputeResponse represents a computed GST result.
type ComputeResponse struct {
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ComputeResponseFromResult converts a calculation result to a response.
func ComputeResponseFromResult(r domain.CalculationResult) ComputeResponse {
	return ComputeResponse{
		GSTAmount:   r.GSTAmount,
		TotalAmount: r.TotalAmount,
	}
}

// CalculationResponse represents one history record in API responses.
type CalculationResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CalculationFromDomain converts a domain calculation to a response.
func CalculationFromDomain(c *domain.Calculation) *CalculationResponse {
	return &CalculationResponse{
		ID:          c.ID,
		Amount:      c.Amount,
		GSTRate:     c.GSTRate,
		GSTAmount:   c.GSTAmount,
		TotalAmount: c.TotalAmount,
		CreatedAt:   c.CreatedAt,
	}
}

// CalculationsFromDomain converts domain calculations to responses.
func CalculationsFromDomain(calcs []*domain.Calculation) []*CalculationResponse {
	result := make([]*CalculationResponse, len(calcs))
	for i, c := range calcs {
		result[i] = CalculationFromDomain(c)
	}
	return result
}

// HistoryResponse represents a history listing.
type HistoryResponse struct {
	Calculations []*CalculationResponse `json:"calculations"`
	Total        int64                  `json:"total"`
}

// SummaryResponse represents an AI-generated history summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
