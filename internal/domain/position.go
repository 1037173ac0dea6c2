package domain

import "github.com/shopspring/decimal"

// OpenAsset is a still-open position derived from unmatched buy lots.
// CurrentPrice and UnrealizedPL are nil when no live quote was available;
// the position itself is still reported.
type OpenAsset struct {
	Symbol       string           `json:"symbol"`
	Quantity     decimal.Decimal  `json:"quantity"`
	AvgBuyPrice  decimal.Decimal  `json:"avgBuyPrice"`
	TotalCost    decimal.Decimal  `json:"totalCost"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	UnrealizedPL *decimal.Decimal `json:"unrealizedPL"`
}
