package booking

import (
	"math"
	"time"
)

// DepositRate is the fixed refundable deposit, 20% of the rental total.
const DepositRate = 0.20

// Quote is the price breakdown for a rental period.
type Quote struct {
	DurationDays  int     `json:"durationDays"`
	TotalAmount   float64 `json:"totalAmount"`
	DepositAmount float64 `json:"depositAmount"`
}

// PriceQuote computes the rental price for [start, end). Partial days are
// billed as full days. Returns ErrInvalidDateRange when start >= end.
func PriceQuote(start, end time.Time, pricePerDay float64) (Quote, error) {
	if !start.Before(end) {
		return Quote{}, ErrInvalidDateRange
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	total := float64(days) * pricePerDay

	return Quote{
		DurationDays:  days,
		TotalAmount:   total,
		DepositAmount: total * DepositRate,
	}, nil
}
