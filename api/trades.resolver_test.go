package api

import (
	"testing"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_tradeResponseFromModel(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		tradeID := uuid.New()
		strategy := "swing"

		out := tradeResponseFromModel(model.Trade{
			TradeID:    tradeID,
			Symbol:     "AAPL",
			Side:       model.TradeSide_Buy,
			Quantity:   decimal.NewFromInt(100),
			Price:      decimal.NewFromFloat(150.25),
			Commission: decimal.NewFromFloat(1.25),
			Strategy:   &strategy,
			ExecutedAt: util.NewTimestamp(2024, 1, 2, 14, 30),
		})

		require.Equal(t, tradeID, out.TradeID)
		require.Equal(t, "BUY", out.Side)
		require.Equal(t, "2024-01-02T14:30:00Z", out.ExecutedAt)
		require.Equal(t, &strategy, out.Strategy)
		require.Nil(t, out.Notes)
	})
}
