package calculator

import (
	"sort"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"
	"tradejournal/internal/util"

	"github.com/shopspring/decimal"
)

// OpenAssets replays the full trade history and reports every symbol with
// remaining buy-lot quantity. prices supplies last-known quotes by symbol;
// symbols without a quote still appear, with nil price and unrealized P&L.
func OpenAssets(trades []model.Trade, prices map[string]decimal.Decimal) []domain.OpenAsset {
	SortTrades(trades)

	ledger := NewLotLedger()
	for _, t := range trades {
		ledger.Apply(t)
	}

	out := []domain.OpenAsset{}
	for symbol, position := range ledger.OpenPositions() {
		out = append(out, newOpenAsset(symbol, position.Quantity, position.TotalCost, prices))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// MergeOpenAssets rolls per-account open-asset lists up to the user level.
// Quantity and cost are summed per symbol and the average buy price is
// recomputed from the sums - averaging the per-account averages would
// weight small accounts the same as large ones.
func MergeOpenAssets(accountAssets [][]domain.OpenAsset, prices map[string]decimal.Decimal) []domain.OpenAsset {
	totalQty := map[string]decimal.Decimal{}
	totalCost := map[string]decimal.Decimal{}
	symbols := []string{}

	for _, assets := range accountAssets {
		for _, asset := range assets {
			if _, ok := totalQty[asset.Symbol]; !ok {
				symbols = append(symbols, asset.Symbol)
				totalQty[asset.Symbol] = decimal.Zero
				totalCost[asset.Symbol] = decimal.Zero
			}
			totalQty[asset.Symbol] = totalQty[asset.Symbol].Add(asset.Quantity)
			totalCost[asset.Symbol] = totalCost[asset.Symbol].Add(asset.TotalCost)
		}
	}
	sort.Strings(symbols)

	out := []domain.OpenAsset{}
	for _, symbol := range symbols {
		out = append(out, newOpenAsset(symbol, totalQty[symbol], totalCost[symbol], prices))
	}
	return out
}

func newOpenAsset(symbol string, quantity, totalCost decimal.Decimal, prices map[string]decimal.Decimal) domain.OpenAsset {
	avgBuyPrice := decimal.Zero
	if !quantity.IsZero() {
		avgBuyPrice = totalCost.Div(quantity)
	}

	asset := domain.OpenAsset{
		Symbol:      symbol,
		Quantity:    quantity.Round(4),
		AvgBuyPrice: avgBuyPrice.Round(4),
		TotalCost:   totalCost.Round(2),
	}

	if price, ok := prices[symbol]; ok {
		asset.CurrentPrice = util.DecimalPointer(price.Round(4))
		asset.UnrealizedPL = util.DecimalPointer(price.Sub(avgBuyPrice).Mul(quantity).Round(2))
	}

	return asset
}
