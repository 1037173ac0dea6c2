package service

import (
	"testing"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/util"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func filledOrder(id, symbol string, side alpaca.Side, qty, price float64, filledAt time.Time) alpaca.Order {
	avgPrice := decimal.NewFromFloat(price)
	return alpaca.Order{
		ID:             id,
		Symbol:         symbol,
		Side:           side,
		FilledQty:      decimal.NewFromFloat(qty),
		FilledAvgPrice: &avgPrice,
		FilledAt:       &filledAt,
	}
}

func Test_tradeFromAlpacaOrder(t *testing.T) {
	accountID := uuid.New()

	t.Run("converts a filled buy order", func(t *testing.T) {
		filledAt := util.NewTimestamp(2024, 1, 2, 14, 30)
		trade, err := tradeFromAlpacaOrder(accountID, filledOrder("order-1", "aapl", alpaca.Buy, 100, 150.25, filledAt))
		require.NoError(t, err)

		require.Equal(t, accountID, trade.TradingAccountID)
		require.Equal(t, "AAPL", trade.Symbol)
		require.Equal(t, model.TradeSide_Buy, trade.Side)
		require.True(t, decimal.NewFromInt(100).Equal(trade.Quantity))
		require.True(t, decimal.NewFromFloat(150.25).Equal(trade.Price))
		require.True(t, trade.Commission.IsZero())
		require.NotNil(t, trade.ProviderID)
		require.Equal(t, "order-1", *trade.ProviderID)
		require.Equal(t, filledAt, trade.ExecutedAt)
	})

	t.Run("converts a filled sell order", func(t *testing.T) {
		trade, err := tradeFromAlpacaOrder(accountID, filledOrder("order-2", "MSFT", alpaca.Sell, 10, 300, util.NewTimestamp(2024, 1, 3, 9, 45)))
		require.NoError(t, err)
		require.Equal(t, model.TradeSide_Sell, trade.Side)
	})

	t.Run("rejects an unfilled order", func(t *testing.T) {
		order := alpaca.Order{
			ID:     "order-3",
			Symbol: "AAPL",
			Side:   alpaca.Buy,
		}
		_, err := tradeFromAlpacaOrder(accountID, order)
		require.ErrorContains(t, err, "never filled")
	})

	t.Run("rejects an unrecognized side", func(t *testing.T) {
		order := filledOrder("order-4", "AAPL", alpaca.Side("short"), 10, 100, util.NewTimestamp(2024, 1, 2, 14, 30))
		_, err := tradeFromAlpacaOrder(accountID, order)
		require.ErrorContains(t, err, "side")
	})
}
