package calculator

import (
	"sort"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"

	"github.com/shopspring/decimal"
)

// AccountMetrics is a single unordered pass over an account's trades. It
// needs no FIFO state: net P&L here is plain sell revenue minus buy cost
// (commission excluded), a cash-flow figure that intentionally differs
// from the replayer's lot-matched realized P&L.
func AccountMetrics(trades []model.Trade) domain.AccountMetrics {
	metrics := domain.AccountMetrics{
		TotalTrades:      len(trades),
		TotalBuyQty:      decimal.Zero,
		TotalSellQty:     decimal.Zero,
		TotalBuyCost:     decimal.Zero,
		TotalSellRevenue: decimal.Zero,
		SymbolsTraded:    []string{},
		SymbolPositions:  map[string]domain.SymbolPosition{},
	}

	buyQty := map[string]decimal.Decimal{}
	sellQty := map[string]decimal.Decimal{}
	buyValue := map[string]decimal.Decimal{}
	sellValue := map[string]decimal.Decimal{}

	for _, t := range trades {
		value := t.Price.Mul(t.Quantity)
		if _, ok := buyQty[t.Symbol]; !ok {
			metrics.SymbolsTraded = append(metrics.SymbolsTraded, t.Symbol)
			buyQty[t.Symbol] = decimal.Zero
			sellQty[t.Symbol] = decimal.Zero
			buyValue[t.Symbol] = decimal.Zero
			sellValue[t.Symbol] = decimal.Zero
		}

		switch t.Side {
		case model.TradeSide_Buy:
			metrics.TotalBuyQty = metrics.TotalBuyQty.Add(t.Quantity)
			metrics.TotalBuyCost = metrics.TotalBuyCost.Add(value)
			buyQty[t.Symbol] = buyQty[t.Symbol].Add(t.Quantity)
			buyValue[t.Symbol] = buyValue[t.Symbol].Add(value)
		case model.TradeSide_Sell:
			metrics.TotalSellQty = metrics.TotalSellQty.Add(t.Quantity)
			metrics.TotalSellRevenue = metrics.TotalSellRevenue.Add(value)
			sellQty[t.Symbol] = sellQty[t.Symbol].Add(t.Quantity)
			sellValue[t.Symbol] = sellValue[t.Symbol].Add(value)
		}
	}

	metrics.NetProfitLoss = metrics.TotalSellRevenue.Sub(metrics.TotalBuyCost)
	sort.Strings(metrics.SymbolsTraded)

	for _, symbol := range metrics.SymbolsTraded {
		avgBuy := decimal.Zero
		if !buyQty[symbol].IsZero() {
			avgBuy = buyValue[symbol].Div(buyQty[symbol])
		}
		avgSell := decimal.Zero
		if !sellQty[symbol].IsZero() {
			avgSell = sellValue[symbol].Div(sellQty[symbol])
		}
		position := buyQty[symbol].Sub(sellQty[symbol])

		metrics.SymbolPositions[symbol] = domain.SymbolPosition{
			BuyQty:       buyQty[symbol],
			SellQty:      sellQty[symbol],
			Position:     position,
			AvgBuyPrice:  avgBuy,
			AvgSellPrice: avgSell,
			OpenPosition: position.IsPositive(),
		}
	}

	return metrics
}
