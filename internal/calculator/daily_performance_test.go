package calculator

import (
	"testing"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"
	"tradejournal/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func tradeAt(symbol string, side model.TradeSide, qty, price float64, executedAt time.Time) model.Trade {
	return model.Trade{
		Symbol:     symbol,
		Side:       side,
		Quantity:   decimal.NewFromFloat(qty),
		Price:      decimal.NewFromFloat(price),
		ExecutedAt: executedAt,
		CreatedAt:  executedAt,
	}
}

func Test_DailyPerformance(t *testing.T) {
	t.Run("buy day then profitable sell day", func(t *testing.T) {
		trades := []model.Trade{
			tradeAt("AAPL", model.TradeSide_Buy, 100, 150, util.NewTimestamp(2024, 1, 2, 10, 0)),
			tradeAt("AAPL", model.TradeSide_Sell, 100, 160, util.NewTimestamp(2024, 1, 3, 10, 0)),
		}

		out := DailyPerformance(trades, decimal.NewFromInt(10000), time.UTC)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.DailyPerformanceEntry{
					{
						Date:             util.NewDate(2024, 1, 2),
						StartingBalance:  decimal.NewFromInt(10000),
						RealizedPL:       decimal.Zero,
						EndingBalance:    decimal.NewFromInt(10000),
						DailyReturn:      decimal.Zero,
						CumulativeReturn: decimal.Zero,
					},
					{
						// sell proceeds (16000) are credited to the balance
						// on top of the 1000 realized P&L
						Date:             util.NewDate(2024, 1, 3),
						StartingBalance:  decimal.NewFromInt(10000),
						RealizedPL:       decimal.NewFromInt(1000),
						EndingBalance:    decimal.NewFromInt(27000),
						DailyReturn:      decimal.NewFromInt(170),
						CumulativeReturn: decimal.NewFromInt(170),
					},
				},
				out,
			),
		)
	})

	t.Run("open lots carry across day boundaries", func(t *testing.T) {
		trades := []model.Trade{
			tradeAt("AAPL", model.TradeSide_Buy, 100, 150, util.NewTimestamp(2024, 1, 2, 10, 0)),
			tradeAt("AAPL", model.TradeSide_Buy, 100, 170, util.NewTimestamp(2024, 1, 3, 10, 0)),
			tradeAt("AAPL", model.TradeSide_Sell, 100, 180, util.NewTimestamp(2024, 1, 4, 10, 0)),
		}

		out := DailyPerformance(trades, decimal.NewFromInt(50000), time.UTC)

		require.Len(t, out, 3)
		// day 3's sell matches day 1's 150 lot, not day 2's 170 lot
		require.True(t, decimal.NewFromInt(3000).Equal(out[2].RealizedPL),
			"expected 3000, got %s", out[2].RealizedPL)
	})

	t.Run("oversold sell adds nothing to balance or P&L", func(t *testing.T) {
		trades := []model.Trade{
			tradeAt("AAPL", model.TradeSide_Buy, 50, 100, util.NewTimestamp(2024, 1, 2, 10, 0)),
			tradeAt("AAPL", model.TradeSide_Sell, 80, 150, util.NewTimestamp(2024, 1, 3, 10, 0)),
		}

		out := DailyPerformance(trades, decimal.NewFromInt(10000), time.UTC)

		require.Len(t, out, 2)
		require.True(t, out[1].RealizedPL.IsZero(),
			"oversold P&L must be voided, got %s", out[1].RealizedPL)
		require.True(t, decimal.NewFromInt(10000).Equal(out[1].EndingBalance))
	})

	t.Run("zero initial balance yields zero returns", func(t *testing.T) {
		trades := []model.Trade{
			tradeAt("AAPL", model.TradeSide_Buy, 10, 100, util.NewTimestamp(2024, 1, 2, 10, 0)),
		}

		out := DailyPerformance(trades, decimal.Zero, time.UTC)

		require.Len(t, out, 1)
		require.True(t, out[0].DailyReturn.IsZero())
		require.True(t, out[0].CumulativeReturn.IsZero())
	})

	t.Run("empty trade list yields empty series", func(t *testing.T) {
		out := DailyPerformance([]model.Trade{}, decimal.NewFromInt(10000), time.UTC)
		require.Empty(t, out)
	})

	t.Run("quiet days produce no entries", func(t *testing.T) {
		trades := []model.Trade{
			tradeAt("AAPL", model.TradeSide_Buy, 10, 100, util.NewTimestamp(2024, 1, 2, 10, 0)),
			tradeAt("AAPL", model.TradeSide_Sell, 10, 110, util.NewTimestamp(2024, 1, 31, 10, 0)),
		}

		out := DailyPerformance(trades, decimal.NewFromInt(10000), time.UTC)

		require.Len(t, out, 2)
		require.Equal(t, util.NewDate(2024, 1, 2), out[0].Date)
		require.Equal(t, util.NewDate(2024, 1, 31), out[1].Date)
	})

	t.Run("day boundary follows the given timezone", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// 01:00 UTC on Jan 3 is still Jan 2 in New York
		trades := []model.Trade{
			tradeAt("AAPL", model.TradeSide_Buy, 10, 100, util.NewTimestamp(2024, 1, 2, 15, 0)),
			tradeAt("AAPL", model.TradeSide_Sell, 10, 110, util.NewTimestamp(2024, 1, 3, 1, 0)),
		}

		out := DailyPerformance(trades, decimal.NewFromInt(10000), ny)

		require.Len(t, out, 1)
		require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, ny), out[0].Date)
	})

	t.Run("replay is idempotent", func(t *testing.T) {
		trades := []model.Trade{
			tradeAt("AAPL", model.TradeSide_Buy, 100, 150, util.NewTimestamp(2024, 1, 2, 10, 0)),
			tradeAt("MSFT", model.TradeSide_Buy, 50, 300, util.NewTimestamp(2024, 1, 2, 11, 0)),
			tradeAt("AAPL", model.TradeSide_Sell, 60, 155, util.NewTimestamp(2024, 1, 3, 10, 0)),
		}

		first := DailyPerformance(trades, decimal.NewFromInt(10000), time.UTC)
		second := DailyPerformance(trades, decimal.NewFromInt(10000), time.UTC)

		require.Equal(t, "", cmp.Diff(first, second))
	})
}
