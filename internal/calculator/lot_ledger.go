package calculator

import (
	"tradejournal/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// buyLot is a block of purchased quantity at one price. Lots only exist
// inside a single replay - they are never persisted.
type buyLot struct {
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// LotLedger replays a chronological trade stream through per-symbol FIFO
// queues of open buy lots. It does no I/O and assumes quantity and price
// are positive - validation happens at the ingestion boundary.
type LotLedger struct {
	queues map[string][]*buyLot
}

func NewLotLedger() *LotLedger {
	return &LotLedger{
		queues: map[string][]*buyLot{},
	}
}

// SellResult describes what happened to one SELL trade.
//
// A SELL that exceeds the available lot history is voided entirely: even
// the matched portion contributes zero realized P&L and no proceeds. This
// is deliberate policy inherited from the journal's P&L model, not a
// shortfall to patch - an oversold trade can't be priced against lots that
// were never bought.
type SellResult struct {
	RealizedPL   decimal.Decimal
	Proceeds     decimal.Decimal
	FullyMatched bool
}

// Apply feeds a single trade into the ledger. BUYs push a lot and return a
// zero-value result; SELLs consume lots oldest-first.
func (l *LotLedger) Apply(trade model.Trade) SellResult {
	if trade.Side == model.TradeSide_Buy {
		l.buy(trade.Symbol, trade.Quantity, trade.Price)
		return SellResult{RealizedPL: decimal.Zero, Proceeds: decimal.Zero, FullyMatched: true}
	}
	return l.sell(trade.Symbol, trade.Quantity, trade.Price)
}

func (l *LotLedger) buy(symbol string, quantity, price decimal.Decimal) {
	l.queues[symbol] = append(l.queues[symbol], &buyLot{
		Quantity: quantity,
		Price:    price,
	})
}

func (l *LotLedger) sell(symbol string, quantity, price decimal.Decimal) SellResult {
	remaining := quantity
	pl := decimal.Zero

	queue := l.queues[symbol]
	for remaining.IsPositive() && len(queue) > 0 {
		lot := queue[0]
		matched := decimal.Min(remaining, lot.Quantity)

		pl = pl.Add(price.Sub(lot.Price).Mul(matched))

		lot.Quantity = lot.Quantity.Sub(matched)
		remaining = remaining.Sub(matched)

		if lot.Quantity.IsZero() {
			queue = queue[1:]
		}
	}
	l.queues[symbol] = queue

	if remaining.IsPositive() {
		// oversold - void the whole trade's P&L, matched portion included
		return SellResult{RealizedPL: decimal.Zero, Proceeds: decimal.Zero, FullyMatched: false}
	}

	return SellResult{
		RealizedPL:   pl,
		Proceeds:     price.Mul(quantity),
		FullyMatched: true,
	}
}

// OpenPosition is the terminal per-symbol state of a ledger: total
// remaining quantity and its cost across all surviving lots.
type OpenPosition struct {
	Quantity  decimal.Decimal
	TotalCost decimal.Decimal
}

// OpenPositions reports every symbol with quantity still on the books.
func (l *LotLedger) OpenPositions() map[string]OpenPosition {
	out := map[string]OpenPosition{}
	for symbol, queue := range l.queues {
		qty := decimal.Zero
		cost := decimal.Zero
		for _, lot := range queue {
			qty = qty.Add(lot.Quantity)
			cost = cost.Add(lot.Quantity.Mul(lot.Price))
		}
		if qty.IsPositive() {
			out[symbol] = OpenPosition{Quantity: qty, TotalCost: cost}
		}
	}
	return out
}
