package calculator

import (
	"testing"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_AccountMetrics(t *testing.T) {
	t.Run("totals and per-symbol positions", func(t *testing.T) {
		trades := []model.Trade{
			buy("AAPL", 100, 150),
			sell("AAPL", 40, 160),
			buy("MSFT", 10, 300),
		}

		out := AccountMetrics(trades)

		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.AccountMetrics{
					TotalTrades:      3,
					TotalBuyQty:      decimal.NewFromInt(110),
					TotalSellQty:     decimal.NewFromInt(40),
					TotalBuyCost:     decimal.NewFromInt(18000),
					TotalSellRevenue: decimal.NewFromInt(6400),
					NetProfitLoss:    decimal.NewFromInt(-11600),
					SymbolsTraded:    []string{"AAPL", "MSFT"},
					SymbolPositions: map[string]domain.SymbolPosition{
						"AAPL": {
							BuyQty:       decimal.NewFromInt(100),
							SellQty:      decimal.NewFromInt(40),
							Position:     decimal.NewFromInt(60),
							AvgBuyPrice:  decimal.NewFromInt(150),
							AvgSellPrice: decimal.NewFromInt(160),
							OpenPosition: true,
						},
						"MSFT": {
							BuyQty:       decimal.NewFromInt(10),
							SellQty:      decimal.Zero,
							Position:     decimal.NewFromInt(10),
							AvgBuyPrice:  decimal.NewFromInt(300),
							AvgSellPrice: decimal.Zero,
							OpenPosition: true,
						},
					},
				},
				out,
			),
		)
	})

	t.Run("average buy price is value weighted", func(t *testing.T) {
		trades := []model.Trade{
			buy("AAPL", 100, 100),
			buy("AAPL", 10, 200),
		}

		out := AccountMetrics(trades)

		expected := decimal.NewFromInt(12000).Div(decimal.NewFromInt(110))
		require.True(t, expected.Equal(out.SymbolPositions["AAPL"].AvgBuyPrice),
			"expected %s, got %s", expected, out.SymbolPositions["AAPL"].AvgBuyPrice)
	})

	t.Run("flat position is not open", func(t *testing.T) {
		trades := []model.Trade{
			buy("AAPL", 100, 100),
			sell("AAPL", 100, 110),
		}

		out := AccountMetrics(trades)

		require.False(t, out.SymbolPositions["AAPL"].OpenPosition)
		require.True(t, out.SymbolPositions["AAPL"].Position.IsZero())
	})

	t.Run("no trades", func(t *testing.T) {
		out := AccountMetrics([]model.Trade{})

		require.Equal(t, 0, out.TotalTrades)
		require.Empty(t, out.SymbolsTraded)
		require.True(t, out.NetProfitLoss.IsZero())
	})
}
