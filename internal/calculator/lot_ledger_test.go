package calculator

import (
	"testing"

	"tradejournal/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func buy(symbol string, qty, price float64) model.Trade {
	return model.Trade{
		Symbol:   symbol,
		Side:     model.TradeSide_Buy,
		Quantity: decimal.NewFromFloat(qty),
		Price:    decimal.NewFromFloat(price),
	}
}

func sell(symbol string, qty, price float64) model.Trade {
	return model.Trade{
		Symbol:   symbol,
		Side:     model.TradeSide_Sell,
		Quantity: decimal.NewFromFloat(qty),
		Price:    decimal.NewFromFloat(price),
	}
}

func Test_LotLedger_fifoMatching(t *testing.T) {
	t.Run("sell consumes oldest lot first", func(t *testing.T) {
		ledger := NewLotLedger()
		ledger.Apply(buy("AAPL", 100, 150))
		ledger.Apply(buy("AAPL", 100, 160))

		result := ledger.Apply(sell("AAPL", 100, 170))

		require.True(t, result.FullyMatched)
		// matched entirely against the 150 lot, not the 160 one
		require.True(t, decimal.NewFromInt(2000).Equal(result.RealizedPL),
			"expected 2000, got %s", result.RealizedPL)
	})

	t.Run("sell spans multiple lots", func(t *testing.T) {
		ledger := NewLotLedger()
		ledger.Apply(buy("AAPL", 50, 100))
		ledger.Apply(buy("AAPL", 50, 120))

		result := ledger.Apply(sell("AAPL", 80, 130))

		require.True(t, result.FullyMatched)
		// 50 @ (130-100) + 30 @ (130-120)
		require.True(t, decimal.NewFromInt(1800).Equal(result.RealizedPL),
			"expected 1800, got %s", result.RealizedPL)
		require.True(t, decimal.NewFromFloat(80*130).Equal(result.Proceeds))
	})

	t.Run("symbols never cross-match", func(t *testing.T) {
		ledger := NewLotLedger()
		ledger.Apply(buy("AAPL", 100, 150))

		result := ledger.Apply(sell("MSFT", 100, 160))

		require.False(t, result.FullyMatched)
		require.True(t, result.RealizedPL.IsZero())
	})
}

func Test_LotLedger_oversoldVoidsPL(t *testing.T) {
	t.Run("oversold sell contributes exactly zero", func(t *testing.T) {
		ledger := NewLotLedger()
		ledger.Apply(buy("AAPL", 50, 100))

		result := ledger.Apply(sell("AAPL", 80, 150))

		require.False(t, result.FullyMatched)
		require.True(t, result.RealizedPL.IsZero(),
			"matched portion must not be partially credited, got %s", result.RealizedPL)
		require.True(t, result.Proceeds.IsZero())
	})

	t.Run("oversold still consumes the matched lots", func(t *testing.T) {
		ledger := NewLotLedger()
		ledger.Apply(buy("AAPL", 50, 100))
		ledger.Apply(sell("AAPL", 80, 150))

		// the 50 shares were drained even though the P&L was voided
		require.Empty(t, ledger.OpenPositions())
	})
}

func Test_LotLedger_conservation(t *testing.T) {
	t.Run("remaining quantity equals buys minus matched sells", func(t *testing.T) {
		ledger := NewLotLedger()
		ledger.Apply(buy("AAPL", 100, 100))
		ledger.Apply(buy("AAPL", 50, 110))
		ledger.Apply(sell("AAPL", 120, 115))

		positions := ledger.OpenPositions()
		require.Len(t, positions, 1)
		require.True(t, decimal.NewFromInt(30).Equal(positions["AAPL"].Quantity),
			"expected 30, got %s", positions["AAPL"].Quantity)
		// remaining 30 shares all came from the 110 lot
		require.True(t, decimal.NewFromInt(30*110).Equal(positions["AAPL"].TotalCost))
	})

	t.Run("exactly drained lot is removed", func(t *testing.T) {
		ledger := NewLotLedger()
		ledger.Apply(buy("AAPL", 100, 100))
		ledger.Apply(sell("AAPL", 100, 110))

		require.Empty(t, ledger.OpenPositions())
	})
}
