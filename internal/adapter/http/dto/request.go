package dto

import (
	"github.com/gstmate/gstmate/internal/usecase"
)

// ComputeRequest represents a request to compute GST on an amount. Amount and
// rate are strings so malformed values reach the validation layer instead of
// dying in JSON decoding.
type ComputeRequest struct {
	Amount  string `json:"amount"`
	GSTRate string `json:"gst_rate"`
}

// ToUseCaseInput converts to use case input for the given (possibly empty)
// user.
func (r *ComputeRequest) ToUseCaseInput(userID string) usecase.ComputeInput {
	return usecase.ComputeInput{
		Amount:  r.Amount,
		GSTRate: r.GSTRate,
		UserID:  userID,
	}
}
