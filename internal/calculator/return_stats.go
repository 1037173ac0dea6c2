package calculator

import (
	"fmt"
	"math"

	"tradejournal/internal/domain"

	"github.com/montanaflynn/stats"
)

const tradingDaysPerYear = 252

// ReturnStats summarizes a daily performance series: sample stdev of daily
// returns annualized by sqrt(252), geometric annualized return over the
// series' span, and a Sharpe ratio against the supplied risk-free rate
// (an annual fraction, e.g. 0.045).
//
// It assumes the series reasonably covers its date range; a handful of
// scattered entries will produce a technically correct but meaningless
// annualization.
func ReturnStats(entries []domain.DailyPerformanceEntry, riskFreeRate float64) (*domain.ReturnStats, error) {
	if len(entries) < 2 {
		return nil, fmt.Errorf("cannot calculate return stats on < 2 daily entries")
	}

	returns := make([]float64, 0, len(entries))
	for _, e := range entries {
		// DailyReturn is a percentage
		returns = append(returns, e.DailyReturn.InexactFloat64()/100)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev of daily returns: %w", err)
	}
	annualizedStdev := stdev * math.Sqrt(tradingDaysPerYear)

	startValue := entries[0].StartingBalance.InexactFloat64()
	endValue := entries[len(entries)-1].EndingBalance.InexactFloat64()
	if startValue == 0 {
		return nil, fmt.Errorf("cannot calculate return stats with 0 starting balance")
	}

	numHours := entries[len(entries)-1].Date.Sub(entries[0].Date).Hours()
	numYears := numHours / (365 * 24)
	if numYears == 0 {
		return nil, fmt.Errorf("cannot calculate return stats on a single-day span")
	}
	annualizedReturn := math.Pow(endValue/startValue, 1/numYears) - 1

	sharpeRatio := 0.0
	if annualizedStdev != 0 {
		sharpeRatio = (annualizedReturn - riskFreeRate) / annualizedStdev
	}

	return &domain.ReturnStats{
		AnnualizedStdev:  annualizedStdev,
		AnnualizedReturn: annualizedReturn,
		SharpeRatio:      sharpeRatio,
	}, nil
}
