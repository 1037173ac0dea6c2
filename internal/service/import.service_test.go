package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"tradejournal/internal/db/models/postgres/public/model"
	mock_repository "tradejournal/internal/repository/mocks"
	"tradejournal/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_ImportTrades(t *testing.T) {
	t.Run("parses and inserts a valid csv", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tradeRepository := mock_repository.NewMockTradeRepository(ctrl)

		accountID := uuid.New()
		handler := importServiceHandler{
			TradeRepository: tradeRepository,
		}

		csv := strings.Join([]string{
			"symbol,side,quantity,price,commission,executed_at,strategy,notes",
			"aapl,buy,100,150.50,1.25,2024-01-02T10:00:00Z,swing,first buy",
			"AAPL,SELL,40,160,,2024-01-03T10:00:00-05:00,,",
		}, "\n")

		var inserted []model.Trade
		tradeRepository.EXPECT().
			AddMany(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, trades []model.Trade) ([]model.Trade, error) {
				inserted = trades
				return trades, nil
			})

		out, err := handler.ImportTrades(context.Background(), accountID, strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, out, 2)

		strategy := "swing"
		notes := "first buy"
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]model.Trade{
					{
						TradingAccountID: accountID,
						Symbol:           "AAPL",
						Side:             model.TradeSide_Buy,
						Quantity:         decimal.NewFromInt(100),
						Price:            decimal.NewFromFloat(150.50),
						Commission:       decimal.NewFromFloat(1.25),
						Strategy:         &strategy,
						Notes:            &notes,
						ExecutedAt:       util.NewTimestamp(2024, 1, 2, 10, 0),
					},
					{
						TradingAccountID: accountID,
						Symbol:           "AAPL",
						Side:             model.TradeSide_Sell,
						Quantity:         decimal.NewFromInt(40),
						Price:            decimal.NewFromInt(160),
						Commission:       decimal.Zero,
						ExecutedAt:       util.NewTimestamp(2024, 1, 3, 15, 0),
					},
				},
				inserted,
			),
		)
	})

	t.Run("rejects the whole file on one bad row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tradeRepository := mock_repository.NewMockTradeRepository(ctrl)

		handler := importServiceHandler{
			TradeRepository: tradeRepository,
		}

		csv := strings.Join([]string{
			"symbol,side,quantity,price,commission,executed_at,strategy,notes",
			"AAPL,BUY,100,150,,2024-01-02T10:00:00Z,,",
			"AAPL,HOLD,40,160,,2024-01-03T10:00:00Z,,",
		}, "\n")

		_, err := handler.ImportTrades(context.Background(), uuid.New(), strings.NewReader(csv))
		require.ErrorContains(t, err, "row 3")
		require.ErrorContains(t, err, "side")
	})

	t.Run("rejects timestamps without zone info", func(t *testing.T) {
		handler := importServiceHandler{}

		csv := strings.Join([]string{
			"symbol,side,quantity,price,commission,executed_at,strategy,notes",
			"AAPL,BUY,100,150,,2024-01-02 10:00:00,,",
		}, "\n")

		_, err := handler.ImportTrades(context.Background(), uuid.New(), strings.NewReader(csv))
		require.ErrorContains(t, err, "executed_at")
	})

	t.Run("rejects non-positive quantity and price", func(t *testing.T) {
		handler := importServiceHandler{}

		for _, row := range []string{
			"AAPL,BUY,0,150,,2024-01-02T10:00:00Z,,",
			"AAPL,BUY,-5,150,,2024-01-02T10:00:00Z,,",
			"AAPL,BUY,100,0,,2024-01-02T10:00:00Z,,",
		} {
			csv := "symbol,side,quantity,price,commission,executed_at,strategy,notes\n" + row
			_, err := handler.ImportTrades(context.Background(), uuid.New(), strings.NewReader(csv))
			require.Error(t, err, "row should be rejected: %s", row)
		}
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		handler := importServiceHandler{}

		csv := "symbol,side,quantity,price,commission,executed_at,strategy,notes\n"
		_, err := handler.ImportTrades(context.Background(), uuid.New(), strings.NewReader(csv))
		require.Error(t, err)
	})
}
