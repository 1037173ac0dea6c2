package service

import (
	"context"
	"testing"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"
	mock_repository "tradejournal/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_GetAccountMetrics(t *testing.T) {
	t.Run("rehydrates the stored projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metricsRepository := mock_repository.NewMockAccountMetricsRepository(ctrl)

		accountID := uuid.New()

		handler := metricsServiceHandler{
			AccountMetricsRepository: metricsRepository,
		}

		metricsRepository.EXPECT().Get(accountID).Return(
			&model.AccountMetrics{
				TradingAccountID: accountID,
				TotalTrades:      2,
				TotalBuyQty:      decimal.NewFromInt(100),
				TotalSellQty:     decimal.NewFromInt(40),
				TotalBuyCost:     decimal.NewFromInt(15000),
				TotalSellRevenue: decimal.NewFromInt(6400),
				NetProfitLoss:    decimal.NewFromInt(-8600),
				SymbolsTraded:    `["AAPL"]`,
			},
			[]model.SymbolPosition{
				{
					TradingAccountID: accountID,
					Symbol:           "AAPL",
					BuyQty:           decimal.NewFromInt(100),
					SellQty:          decimal.NewFromInt(40),
					Position:         decimal.NewFromInt(60),
					AvgBuyPrice:      decimal.NewFromInt(150),
					AvgSellPrice:     decimal.NewFromInt(160),
					OpenPosition:     true,
				},
			},
			nil,
		)

		out, err := handler.GetAccountMetrics(context.Background(), accountID)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				&domain.AccountMetrics{
					TotalTrades:      2,
					TotalBuyQty:      decimal.NewFromInt(100),
					TotalSellQty:     decimal.NewFromInt(40),
					TotalBuyCost:     decimal.NewFromInt(15000),
					TotalSellRevenue: decimal.NewFromInt(6400),
					NetProfitLoss:    decimal.NewFromInt(-8600),
					SymbolsTraded:    []string{"AAPL"},
					SymbolPositions: map[string]domain.SymbolPosition{
						"AAPL": {
							BuyQty:       decimal.NewFromInt(100),
							SellQty:      decimal.NewFromInt(40),
							Position:     decimal.NewFromInt(60),
							AvgBuyPrice:  decimal.NewFromInt(150),
							AvgSellPrice: decimal.NewFromInt(160),
							OpenPosition: true,
						},
					},
				},
				out,
			),
		)
	})
}

func Test_metricsToModels(t *testing.T) {
	accountID := uuid.New()

	metricsModel, positionModels, err := metricsToModels(accountID, domain.AccountMetrics{
		TotalTrades:      3,
		TotalBuyQty:      decimal.NewFromInt(110),
		TotalSellQty:     decimal.NewFromInt(40),
		TotalBuyCost:     decimal.NewFromInt(18000),
		TotalSellRevenue: decimal.NewFromInt(6400),
		NetProfitLoss:    decimal.NewFromInt(-11600),
		SymbolsTraded:    []string{"AAPL", "MSFT"},
		SymbolPositions: map[string]domain.SymbolPosition{
			"AAPL": {BuyQty: decimal.NewFromInt(100), Position: decimal.NewFromInt(60), OpenPosition: true},
			"MSFT": {BuyQty: decimal.NewFromInt(10), Position: decimal.NewFromInt(10), OpenPosition: true},
		},
	})
	require.NoError(t, err)

	require.Equal(t, accountID, metricsModel.TradingAccountID)
	require.Equal(t, int32(3), metricsModel.TotalTrades)
	require.Equal(t, `["AAPL","MSFT"]`, metricsModel.SymbolsTraded)

	// rows follow SymbolsTraded order
	require.Len(t, positionModels, 2)
	require.Equal(t, "AAPL", positionModels[0].Symbol)
	require.Equal(t, "MSFT", positionModels[1].Symbol)
	require.True(t, positionModels[0].OpenPosition)
}

func Test_metricsRoundTrip(t *testing.T) {
	accountID := uuid.New()
	original := domain.AccountMetrics{
		TotalTrades:      2,
		TotalBuyQty:      decimal.NewFromInt(100),
		TotalSellQty:     decimal.NewFromInt(40),
		TotalBuyCost:     decimal.NewFromInt(15000),
		TotalSellRevenue: decimal.NewFromInt(6400),
		NetProfitLoss:    decimal.NewFromInt(-8600),
		SymbolsTraded:    []string{"AAPL"},
		SymbolPositions: map[string]domain.SymbolPosition{
			"AAPL": {
				BuyQty:       decimal.NewFromInt(100),
				SellQty:      decimal.NewFromInt(40),
				Position:     decimal.NewFromInt(60),
				AvgBuyPrice:  decimal.NewFromInt(150),
				AvgSellPrice: decimal.NewFromInt(160),
				OpenPosition: true,
			},
		},
	}

	metricsModel, positionModels, err := metricsToModels(accountID, original)
	require.NoError(t, err)

	restored, err := metricsFromModels(&metricsModel, positionModels)
	require.NoError(t, err)

	require.Equal(t, "", cmp.Diff(&original, restored))
}
