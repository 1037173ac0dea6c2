package calculator

import (
	"math"
	"testing"

	"tradejournal/internal/domain"
	"tradejournal/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ReturnStats(t *testing.T) {
	t.Run("one year of flat growth", func(t *testing.T) {
		entries := []domain.DailyPerformanceEntry{
			{
				Date:            util.NewDate(2023, 1, 1),
				StartingBalance: decimal.NewFromInt(10000),
				EndingBalance:   decimal.NewFromInt(10000),
				DailyReturn:     decimal.Zero,
			},
			{
				Date:            util.NewDate(2023, 7, 2),
				StartingBalance: decimal.NewFromInt(10000),
				EndingBalance:   decimal.NewFromInt(10500),
				DailyReturn:     decimal.NewFromInt(5),
			},
			{
				Date:            util.NewDate(2024, 1, 1),
				StartingBalance: decimal.NewFromInt(10500),
				EndingBalance:   decimal.NewFromInt(11000),
				DailyReturn:     decimal.NewFromFloat(4.76),
			},
		}

		out, err := ReturnStats(entries, 0.04)
		require.NoError(t, err)

		// 10% over exactly one year
		require.InDelta(t, 0.10, out.AnnualizedReturn, 0.001)
		require.Greater(t, out.AnnualizedStdev, 0.0)
		expectedSharpe := (out.AnnualizedReturn - 0.04) / out.AnnualizedStdev
		require.InDelta(t, expectedSharpe, out.SharpeRatio, 1e-9)
	})

	t.Run("fewer than two entries", func(t *testing.T) {
		_, err := ReturnStats([]domain.DailyPerformanceEntry{
			{Date: util.NewDate(2024, 1, 1)},
		}, 0)
		require.Error(t, err)
	})

	t.Run("single day span", func(t *testing.T) {
		_, err := ReturnStats([]domain.DailyPerformanceEntry{
			{
				Date:            util.NewDate(2024, 1, 1),
				StartingBalance: decimal.NewFromInt(100),
				EndingBalance:   decimal.NewFromInt(100),
			},
			{
				Date:            util.NewDate(2024, 1, 1),
				StartingBalance: decimal.NewFromInt(100),
				EndingBalance:   decimal.NewFromInt(101),
			},
		}, 0)
		require.Error(t, err)
	})

	t.Run("zero stdev yields zero sharpe", func(t *testing.T) {
		entries := []domain.DailyPerformanceEntry{
			{
				Date:            util.NewDate(2023, 1, 1),
				StartingBalance: decimal.NewFromInt(10000),
				EndingBalance:   decimal.NewFromInt(10000),
				DailyReturn:     decimal.Zero,
			},
			{
				Date:            util.NewDate(2024, 1, 1),
				StartingBalance: decimal.NewFromInt(10000),
				EndingBalance:   decimal.NewFromInt(10000),
				DailyReturn:     decimal.Zero,
			},
		}

		out, err := ReturnStats(entries, 0.04)
		require.NoError(t, err)
		require.Equal(t, 0.0, out.SharpeRatio)
		require.True(t, math.Abs(out.AnnualizedReturn) < 1e-9)
	})
}
