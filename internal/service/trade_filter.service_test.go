package service

import (
	"context"
	"testing"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/repository"
	mock_repository "tradejournal/internal/repository/mocks"
	"tradejournal/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_FilterTrades(t *testing.T) {
	accountID := uuid.New()
	trades := []model.Trade{
		newTrade(accountID, "AAPL", model.TradeSide_Buy, 100, 150, util.NewTimestamp(2024, 1, 2, 10, 0)),
		newTrade(accountID, "AAPL", model.TradeSide_Sell, 40, 160, util.NewTimestamp(2024, 1, 3, 10, 0)),
		newTrade(accountID, "MSFT", model.TradeSide_Buy, 10, 300, util.NewTimestamp(2024, 2, 1, 10, 0)),
	}
	trades[2].Strategy = util.StringPointer("swing")

	newHandler := func(t *testing.T) tradeFilterServiceHandler {
		ctrl := gomock.NewController(t)
		tradeRepository := mock_repository.NewMockTradeRepository(ctrl)
		tradeRepository.EXPECT().List(accountID, repository.TradeListFilter{}).Return(trades, nil).AnyTimes()
		return tradeFilterServiceHandler{
			TradeRepository: tradeRepository,
		}
	}

	t.Run("filters by symbol and side", func(t *testing.T) {
		handler := newHandler(t)

		out, err := handler.FilterTrades(context.Background(), accountID, `symbol == "AAPL" && side == "SELL"`)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, model.TradeSide_Sell, out[0].Side)
	})

	t.Run("filters by numeric fields", func(t *testing.T) {
		handler := newHandler(t)

		out, err := handler.FilterTrades(context.Background(), accountID, `price > 150 && quantity < 50`)
		require.NoError(t, err)
		require.Len(t, out, 2)
	})

	t.Run("filters by trade value", func(t *testing.T) {
		handler := newHandler(t)

		out, err := handler.FilterTrades(context.Background(), accountID, `value >= 15000`)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, "AAPL", out[0].Symbol)
	})

	t.Run("date helpers bound the series", func(t *testing.T) {
		handler := newHandler(t)

		out, err := handler.FilterTrades(context.Background(), accountID, `after("2024-02-01")`)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, "MSFT", out[0].Symbol)
	})

	t.Run("contains matches notes and strategy", func(t *testing.T) {
		handler := newHandler(t)

		out, err := handler.FilterTrades(context.Background(), accountID, `contains(strategy, "swing")`)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, "MSFT", out[0].Symbol)
	})

	t.Run("rejects a non-boolean expression", func(t *testing.T) {
		handler := newHandler(t)

		_, err := handler.FilterTrades(context.Background(), accountID, `price + 1`)
		require.ErrorContains(t, err, "boolean")
	})

	t.Run("rejects an empty expression", func(t *testing.T) {
		handler := newHandler(t)

		_, err := handler.FilterTrades(context.Background(), accountID, "  ")
		require.Error(t, err)
	})

	t.Run("surfaces evaluation errors", func(t *testing.T) {
		handler := newHandler(t)

		_, err := handler.FilterTrades(context.Background(), accountID, `nonsense(`)
		require.Error(t, err)
	})
}
