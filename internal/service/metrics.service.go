package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tradejournal/internal/calculator"
	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"
	"tradejournal/internal/repository"

	"github.com/google/uuid"
)

// MetricsService maintains the persisted metrics projection. Recompute
// always rebuilds from the full trade log and replaces whatever was
// stored - see AccountMetricsRepository for why nothing is patched in
// place.
type MetricsService interface {
	RecomputeAccountMetrics(ctx context.Context, tradingAccountID uuid.UUID) (*domain.AccountMetrics, error)
	GetAccountMetrics(ctx context.Context, tradingAccountID uuid.UUID) (*domain.AccountMetrics, error)
}

type metricsServiceHandler struct {
	Db                       *sql.DB
	TradeRepository          repository.TradeRepository
	AccountMetricsRepository repository.AccountMetricsRepository
}

func NewMetricsService(
	db *sql.DB,
	tradeRepository repository.TradeRepository,
	accountMetricsRepository repository.AccountMetricsRepository,
) MetricsService {
	return metricsServiceHandler{
		Db:                       db,
		TradeRepository:          tradeRepository,
		AccountMetricsRepository: accountMetricsRepository,
	}
}

func (h metricsServiceHandler) RecomputeAccountMetrics(ctx context.Context, tradingAccountID uuid.UUID) (*domain.AccountMetrics, error) {
	trades, err := h.TradeRepository.List(tradingAccountID, repository.TradeListFilter{})
	if err != nil {
		return nil, err
	}

	metrics := calculator.AccountMetrics(trades)

	metricsModel, positionModels, err := metricsToModels(tradingAccountID, metrics)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	err = h.AccountMetricsRepository.Overwrite(tx, metricsModel, positionModels)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit metrics recompute: %w", err)
	}

	return &metrics, nil
}

func (h metricsServiceHandler) GetAccountMetrics(ctx context.Context, tradingAccountID uuid.UUID) (*domain.AccountMetrics, error) {
	metricsModel, positionModels, err := h.AccountMetricsRepository.Get(tradingAccountID)
	if err != nil {
		return nil, err
	}

	return metricsFromModels(metricsModel, positionModels)
}

func metricsToModels(tradingAccountID uuid.UUID, metrics domain.AccountMetrics) (model.AccountMetrics, []model.SymbolPosition, error) {
	symbolsJson, err := json.Marshal(metrics.SymbolsTraded)
	if err != nil {
		return model.AccountMetrics{}, nil, fmt.Errorf("failed to marshal traded symbols: %w", err)
	}

	metricsModel := model.AccountMetrics{
		TradingAccountID: tradingAccountID,
		TotalTrades:      int32(metrics.TotalTrades),
		TotalBuyQty:      metrics.TotalBuyQty,
		TotalSellQty:     metrics.TotalSellQty,
		TotalBuyCost:     metrics.TotalBuyCost,
		TotalSellRevenue: metrics.TotalSellRevenue,
		NetProfitLoss:    metrics.NetProfitLoss,
		SymbolsTraded:    string(symbolsJson),
	}

	// stable insert order keeps diffing the table against a previous
	// recompute straightforward
	positionModels := []model.SymbolPosition{}
	for _, symbol := range metrics.SymbolsTraded {
		p := metrics.SymbolPositions[symbol]
		positionModels = append(positionModels, model.SymbolPosition{
			TradingAccountID: tradingAccountID,
			Symbol:           symbol,
			BuyQty:           p.BuyQty,
			SellQty:          p.SellQty,
			Position:         p.Position,
			AvgBuyPrice:      p.AvgBuyPrice,
			AvgSellPrice:     p.AvgSellPrice,
			OpenPosition:     p.OpenPosition,
		})
	}

	return metricsModel, positionModels, nil
}

func metricsFromModels(metricsModel *model.AccountMetrics, positionModels []model.SymbolPosition) (*domain.AccountMetrics, error) {
	symbols := []string{}
	err := json.Unmarshal([]byte(metricsModel.SymbolsTraded), &symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal traded symbols: %w", err)
	}

	positions := map[string]domain.SymbolPosition{}
	for _, p := range positionModels {
		positions[p.Symbol] = domain.SymbolPosition{
			BuyQty:       p.BuyQty,
			SellQty:      p.SellQty,
			Position:     p.Position,
			AvgBuyPrice:  p.AvgBuyPrice,
			AvgSellPrice: p.AvgSellPrice,
			OpenPosition: p.OpenPosition,
		}
	}

	return &domain.AccountMetrics{
		TotalTrades:      int(metricsModel.TotalTrades),
		TotalBuyQty:      metricsModel.TotalBuyQty,
		TotalSellQty:     metricsModel.TotalSellQty,
		TotalBuyCost:     metricsModel.TotalBuyCost,
		TotalSellRevenue: metricsModel.TotalSellRevenue,
		NetProfitLoss:    metricsModel.NetProfitLoss,
		SymbolsTraded:    symbols,
		SymbolPositions:  positions,
	}, nil
}
