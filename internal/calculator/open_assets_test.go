package calculator

import (
	"testing"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_OpenAssets(t *testing.T) {
	t.Run("remaining lots become open assets", func(t *testing.T) {
		trades := []model.Trade{
			buy("AAPL", 100, 150),
			buy("AAPL", 100, 170),
			sell("AAPL", 50, 180),
		}

		prices := map[string]decimal.Decimal{
			"AAPL": decimal.NewFromInt(200),
		}

		out := OpenAssets(trades, prices)

		// 50 left @ 150 plus 100 @ 170: qty 150, cost 24500
		expectedPrice := decimal.NewFromInt(200)
		avgBuyPrice := decimal.NewFromInt(24500).Div(decimal.NewFromInt(150))
		expectedPL := decimal.NewFromInt(200).Sub(avgBuyPrice).Mul(decimal.NewFromInt(150)).Round(2)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.OpenAsset{
					{
						Symbol:       "AAPL",
						Quantity:     decimal.NewFromInt(150),
						AvgBuyPrice:  avgBuyPrice.Round(4),
						TotalCost:    decimal.NewFromInt(24500),
						CurrentPrice: &expectedPrice,
						UnrealizedPL: &expectedPL,
					},
				},
				out,
			),
		)
	})

	t.Run("missing quote degrades fields, not the snapshot", func(t *testing.T) {
		trades := []model.Trade{
			buy("AAPL", 100, 150),
		}

		out := OpenAssets(trades, map[string]decimal.Decimal{})

		require.Len(t, out, 1)
		require.Nil(t, out[0].CurrentPrice)
		require.Nil(t, out[0].UnrealizedPL)
		require.True(t, decimal.NewFromInt(100).Equal(out[0].Quantity))
	})

	t.Run("fully closed symbols are omitted", func(t *testing.T) {
		trades := []model.Trade{
			buy("AAPL", 100, 150),
			sell("AAPL", 100, 160),
			buy("MSFT", 10, 300),
		}

		out := OpenAssets(trades, map[string]decimal.Decimal{})

		require.Len(t, out, 1)
		require.Equal(t, "MSFT", out[0].Symbol)
	})
}

func Test_MergeOpenAssets(t *testing.T) {
	t.Run("averages recomputed from summed totals", func(t *testing.T) {
		accountA := OpenAssets([]model.Trade{buy("AAPL", 100, 100)}, nil)
		accountB := OpenAssets([]model.Trade{buy("AAPL", 10, 200)}, nil)

		out := MergeOpenAssets([][]domain.OpenAsset{accountA, accountB}, map[string]decimal.Decimal{})

		require.Len(t, out, 1)
		require.True(t, decimal.NewFromInt(110).Equal(out[0].Quantity))
		require.True(t, decimal.NewFromInt(12000).Equal(out[0].TotalCost))
		// 12000/110, not the midpoint of the two per-account averages
		require.Equal(
			t,
			decimal.NewFromInt(12000).Div(decimal.NewFromInt(110)).Round(4).String(),
			out[0].AvgBuyPrice.String(),
		)
	})
}
