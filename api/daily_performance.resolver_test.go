package api

import (
	"testing"

	"tradejournal/internal/domain"
	"tradejournal/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_dailyPerformanceResponseFromDomain(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		out := dailyPerformanceResponseFromDomain([]domain.DailyPerformanceEntry{
			{
				Date:             util.NewDate(2024, 1, 3),
				StartingBalance:  decimal.NewFromInt(10000),
				RealizedPL:       decimal.NewFromInt(1000),
				EndingBalance:    decimal.NewFromInt(11000),
				DailyReturn:      decimal.NewFromInt(10),
				CumulativeReturn: decimal.NewFromInt(10),
			},
		})

		require.Len(t, out, 1)
		require.Equal(t, "2024-01-03", out[0].Date)
		require.True(t, decimal.NewFromInt(11000).Equal(out[0].EndingBalance))
	})

	t.Run("empty series encodes as empty list", func(t *testing.T) {
		out := dailyPerformanceResponseFromDomain(nil)
		require.NotNil(t, out)
		require.Empty(t, out)
	})
}
