package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyPerformanceEntry is one calendar day of replayed account activity.
// Days with no trades produce no entry, so a series is sparse.
//
// DailyReturn and CumulativeReturn are percentages (already multiplied by
// 100), rounded to 2 decimal places like the balance fields.
type DailyPerformanceEntry struct {
	Date             time.Time       `json:"date"`
	StartingBalance  decimal.Decimal `json:"startingBalance"`
	RealizedPL       decimal.Decimal `json:"realizedPL"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
	DailyReturn      decimal.Decimal `json:"dailyReturn"`
	CumulativeReturn decimal.Decimal `json:"cumulativeReturn"`
}

// ReturnStats summarizes a daily performance series. Returns and stdev are
// annualized fractions, not percentages.
type ReturnStats struct {
	AnnualizedStdev  float64
	AnnualizedReturn float64
	SharpeRatio      float64
}
