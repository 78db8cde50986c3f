package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPriceQuote_ThreeDayRental(t *testing.T) {
	quote, err := PriceQuote(date(2025, time.January, 1), date(2025, time.January, 4), 50)
	require.NoError(t, err)

	assert.Equal(t, 3, quote.DurationDays)
	assert.Equal(t, 150.0, quote.TotalAmount)
	assert.Equal(t, 30.0, quote.DepositAmount)
}

func TestPriceQuote_PartialDayBilledAsFull(t *testing.T) {
	start := date(2025, time.March, 10)
	end := start.Add(25 * time.Hour)

	quote, err := PriceQuote(start, end, 100)
	require.NoError(t, err)

	assert.Equal(t, 2, quote.DurationDays)
	assert.Equal(t, 200.0, quote.TotalAmount)
	assert.Equal(t, 40.0, quote.DepositAmount)
}

func TestPriceQuote_SingleDay(t *testing.T) {
	quote, err := PriceQuote(date(2025, time.June, 1), date(2025, time.June, 2), 80)
	require.NoError(t, err)

	assert.Equal(t, 1, quote.DurationDays)
	assert.Equal(t, 80.0, quote.TotalAmount)
	assert.Equal(t, 16.0, quote.DepositAmount)
}

func TestPriceQuote_InvalidRanges(t *testing.T) {
	day := date(2025, time.May, 5)

	_, err := PriceQuote(day, day, 50)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = PriceQuote(day.Add(time.Hour), day, 50)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
