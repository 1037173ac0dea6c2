package calculator

import (
	"sort"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"

	"github.com/shopspring/decimal"
)

// SortTrades orders trades for deterministic replay. Executed-at ties are
// broken by insertion time, then by id, so two replays of the same trade
// log always walk the same sequence.
func SortTrades(trades []model.Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		if !trades[i].ExecutedAt.Equal(trades[j].ExecutedAt) {
			return trades[i].ExecutedAt.Before(trades[j].ExecutedAt)
		}
		if !trades[i].CreatedAt.Equal(trades[j].CreatedAt) {
			return trades[i].CreatedAt.Before(trades[j].CreatedAt)
		}
		return trades[i].TradeID.String() < trades[j].TradeID.String()
	})
}

// DailyPerformance replays an account's trades day by day through a fresh
// lot ledger and emits one entry per calendar day that had activity. Open
// lots and the running balance carry across day boundaries; the ledger is
// never reset mid-series.
//
// Day boundaries are taken in loc. Balances and P&L round to 2 decimal
// places; returns are percentages rounded to 2 places. A zero previous or
// initial balance yields a 0 return rather than a division error.
func DailyPerformance(trades []model.Trade, initialBalance decimal.Decimal, loc *time.Location) []domain.DailyPerformanceEntry {
	if loc == nil {
		loc = time.UTC
	}
	SortTrades(trades)

	tradesByDay := map[time.Time][]model.Trade{}
	days := []time.Time{}
	for _, t := range trades {
		local := t.ExecutedAt.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		if _, ok := tradesByDay[day]; !ok {
			days = append(days, day)
		}
		tradesByDay[day] = append(tradesByDay[day], t)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	ledger := NewLotLedger()
	currentBalance := initialBalance
	prevDayValue := initialBalance

	entries := []domain.DailyPerformanceEntry{}
	for _, day := range days {
		realizedPL := decimal.Zero

		for _, trade := range tradesByDay[day] {
			result := ledger.Apply(trade)
			realizedPL = realizedPL.Add(result.RealizedPL)
			if trade.Side == model.TradeSide_Sell && result.FullyMatched {
				currentBalance = currentBalance.Add(result.Proceeds)
			}
		}

		endingBalance := currentBalance.Add(realizedPL)

		dailyReturn := decimal.Zero
		if !prevDayValue.IsZero() {
			dailyReturn = endingBalance.Sub(prevDayValue).Div(prevDayValue)
		}
		cumulativeReturn := decimal.Zero
		if !initialBalance.IsZero() {
			cumulativeReturn = endingBalance.Sub(initialBalance).Div(initialBalance)
		}

		entries = append(entries, domain.DailyPerformanceEntry{
			Date:             day,
			StartingBalance:  prevDayValue.Round(2),
			RealizedPL:       realizedPL.Round(2),
			EndingBalance:    endingBalance.Round(2),
			DailyReturn:      dailyReturn.Mul(decimal.NewFromInt(100)).Round(2),
			CumulativeReturn: cumulativeReturn.Mul(decimal.NewFromInt(100)).Round(2),
		})

		// carry the unrounded balance so rounding error never compounds
		prevDayValue = endingBalance
		currentBalance = endingBalance
	}

	return entries
}
