package domain

import "github.com/shopspring/decimal"

// AccountMetrics is the coarse single-pass summary of an account's trade
// history. NetProfitLoss is sell revenue minus buy cost with no lot
// matching, which is not the same number as the FIFO realized P&L from the
// daily performance replay. Both are intentional: this one describes cash
// flow, the replay describes realized gains.
type AccountMetrics struct {
	TotalTrades      int
	TotalBuyQty      decimal.Decimal
	TotalSellQty     decimal.Decimal
	TotalBuyCost     decimal.Decimal
	TotalSellRevenue decimal.Decimal
	NetProfitLoss    decimal.Decimal
	SymbolsTraded    []string
	SymbolPositions  map[string]SymbolPosition
}

// SymbolPosition is the per-symbol slice of AccountMetrics. Average prices
// are value-weighted and zero when that side has no volume.
type SymbolPosition struct {
	BuyQty       decimal.Decimal
	SellQty      decimal.Decimal
	Position     decimal.Decimal
	AvgBuyPrice  decimal.Decimal
	AvgSellPrice decimal.Decimal
	OpenPosition bool
}
