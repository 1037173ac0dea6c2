package calculator

import (
	"sort"
	"time"

	"tradejournal/internal/domain"

	"github.com/shopspring/decimal"
)

// MergeDailyPerformance combines per-account daily series into one
// user-level series. Balances and realized P&L are summed per date;
// an account with no activity on a date simply contributes nothing that
// day. Returns are recomputed from the merged series against the combined
// starting capital (sum of each account's first-entry starting balance),
// never by averaging per-account return percentages.
func MergeDailyPerformance(accountSeries [][]domain.DailyPerformanceEntry) []domain.DailyPerformanceEntry {
	type dayTotals struct {
		startingBalance decimal.Decimal
		realizedPL      decimal.Decimal
		endingBalance   decimal.Decimal
	}

	totalsByDate := map[time.Time]*dayTotals{}
	dates := []time.Time{}
	totalStartingCapital := decimal.Zero

	for _, series := range accountSeries {
		if len(series) == 0 {
			continue
		}
		totalStartingCapital = totalStartingCapital.Add(series[0].StartingBalance)

		for _, entry := range series {
			totals, ok := totalsByDate[entry.Date]
			if !ok {
				totals = &dayTotals{
					startingBalance: decimal.Zero,
					realizedPL:      decimal.Zero,
					endingBalance:   decimal.Zero,
				}
				totalsByDate[entry.Date] = totals
				dates = append(dates, entry.Date)
			}
			totals.startingBalance = totals.startingBalance.Add(entry.StartingBalance)
			totals.realizedPL = totals.realizedPL.Add(entry.RealizedPL)
			totals.endingBalance = totals.endingBalance.Add(entry.EndingBalance)
		}
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	out := []domain.DailyPerformanceEntry{}
	prevDayValue := totalStartingCapital
	for _, date := range dates {
		totals := totalsByDate[date]

		dailyReturn := decimal.Zero
		if !prevDayValue.IsZero() {
			dailyReturn = totals.endingBalance.Sub(prevDayValue).Div(prevDayValue)
		}
		cumulativeReturn := decimal.Zero
		if !totalStartingCapital.IsZero() {
			cumulativeReturn = totals.endingBalance.Sub(totalStartingCapital).Div(totalStartingCapital)
		}

		out = append(out, domain.DailyPerformanceEntry{
			Date:             date,
			StartingBalance:  totals.startingBalance.Round(2),
			RealizedPL:       totals.realizedPL.Round(2),
			EndingBalance:    totals.endingBalance.Round(2),
			DailyReturn:      dailyReturn.Mul(decimal.NewFromInt(100)).Round(2),
			CumulativeReturn: cumulativeReturn.Mul(decimal.NewFromInt(100)).Round(2),
		})

		prevDayValue = totals.endingBalance
	}

	return out
}
