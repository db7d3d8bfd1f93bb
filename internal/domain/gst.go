package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputeGST calculates the GST amount and total for a given amount and rate
// (percent units). Both outputs are rounded to 2 decimal places,
// half-away-from-zero. Pure function; callers are responsible for validating
// amount > 0 and rate >= 0 first.
func ComputeGST(amount, rate decimal.Decimal) CalculationResult {
	gst := amount.Mul(rate).Div(hundred).Round(2)

	return CalculationResult{
		GSTAmount:   gst,
		TotalAmount: amount.Add(gst).Round(2),
	}
}
