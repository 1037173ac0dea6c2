package repository

import (
	"context"

	"tradejournal/internal/logger"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// PriceRepository serves last-known market quotes. Quotes come from
// Yahoo Finance, which is best-effort: a symbol that can't be priced is
// simply absent from the result, never an error. Open-position snapshots
// must still be produced when the quote vendor is down.
type PriceRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) map[string]decimal.Decimal
}

type priceRepositoryHandler struct{}

func NewPriceRepository() PriceRepository {
	return priceRepositoryHandler{}
}

func (h priceRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) map[string]decimal.Decimal {
	log := logger.FromContext(ctx)

	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		q, err := quote.Get(symbol)
		if err != nil {
			log.Warnf("failed to get quote for %s: %v", symbol, err)
			continue
		}
		if q == nil || q.RegularMarketPrice == 0 {
			log.Warnf("no market price available for %s", symbol)
			continue
		}
		out[symbol] = decimal.NewFromFloat(q.RegularMarketPrice)
	}

	return out
}
