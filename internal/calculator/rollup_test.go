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

func Test_MergeDailyPerformance(t *testing.T) {
	t.Run("non-overlapping accounts sum per date", func(t *testing.T) {
		accountA := DailyPerformance([]model.Trade{
			tradeAt("AAPL", model.TradeSide_Buy, 10, 100, util.NewTimestamp(2024, 1, 2, 10, 0)),
			tradeAt("AAPL", model.TradeSide_Sell, 10, 110, util.NewTimestamp(2024, 1, 2, 14, 0)),
		}, decimal.NewFromInt(1000), time.UTC)

		accountB := DailyPerformance([]model.Trade{
			tradeAt("MSFT", model.TradeSide_Buy, 5, 200, util.NewTimestamp(2024, 1, 3, 10, 0)),
		}, decimal.NewFromInt(2000), time.UTC)

		out := MergeDailyPerformance([][]domain.DailyPerformanceEntry{accountA, accountB})

		require.Len(t, out, 2)

		// Jan 2: only account A traded. Its sell was fully matched, so
		// proceeds (1100) and P&L (100) both land on the balance.
		require.Equal(t, util.NewDate(2024, 1, 2), out[0].Date)
		require.True(t, decimal.NewFromInt(2200).Equal(out[0].EndingBalance),
			"expected 2200, got %s", out[0].EndingBalance)
		require.True(t, decimal.NewFromInt(100).Equal(out[0].RealizedPL))

		// Jan 3: only account B traded; A's balance is not carried into the sum
		require.Equal(t, util.NewDate(2024, 1, 3), out[1].Date)
		require.True(t, decimal.NewFromInt(2000).Equal(out[1].EndingBalance))
	})

	t.Run("cumulative baseline is combined starting capital", func(t *testing.T) {
		accountA := []domain.DailyPerformanceEntry{
			{
				Date:            util.NewDate(2024, 1, 2),
				StartingBalance: decimal.NewFromInt(1000),
				RealizedPL:      decimal.NewFromInt(100),
				EndingBalance:   decimal.NewFromInt(1100),
			},
		}
		accountB := []domain.DailyPerformanceEntry{
			{
				Date:            util.NewDate(2024, 1, 2),
				StartingBalance: decimal.NewFromInt(3000),
				RealizedPL:      decimal.NewFromInt(300),
				EndingBalance:   decimal.NewFromInt(3300),
			},
		}

		out := MergeDailyPerformance([][]domain.DailyPerformanceEntry{accountA, accountB})

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.DailyPerformanceEntry{
					{
						Date:             util.NewDate(2024, 1, 2),
						StartingBalance:  decimal.NewFromInt(4000),
						RealizedPL:       decimal.NewFromInt(400),
						EndingBalance:    decimal.NewFromInt(4400),
						DailyReturn:      decimal.NewFromInt(10),
						CumulativeReturn: decimal.NewFromInt(10),
					},
				},
				out,
			),
		)
	})

	t.Run("empty accounts contribute nothing", func(t *testing.T) {
		out := MergeDailyPerformance([][]domain.DailyPerformanceEntry{{}, {}})
		require.Empty(t, out)
	})
}
