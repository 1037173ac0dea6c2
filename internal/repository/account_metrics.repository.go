package repository

import (
	"database/sql"
	"fmt"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// AccountMetricsRepository persists the metrics projection for an account.
// The stored rows are a memoized copy of a computation over the trade log,
// so writes always replace the whole projection - metrics row and symbol
// positions together - rather than patching pieces of it. Incremental
// updates would eventually drift from the authoritative trade history.
type AccountMetricsRepository interface {
	Overwrite(tx *sql.Tx, metrics model.AccountMetrics, positions []model.SymbolPosition) error
	Get(tradingAccountID uuid.UUID) (*model.AccountMetrics, []model.SymbolPosition, error)
}

type accountMetricsRepositoryHandler struct {
	Db *sql.DB
}

func NewAccountMetricsRepository(db *sql.DB) AccountMetricsRepository {
	return accountMetricsRepositoryHandler{Db: db}
}

func (h accountMetricsRepositoryHandler) Overwrite(tx *sql.Tx, metrics model.AccountMetrics, positions []model.SymbolPosition) error {
	now := time.Now().UTC()
	metrics.LastUpdated = now

	query := table.AccountMetrics.
		INSERT(table.AccountMetrics.AllColumns).
		MODEL(metrics).
		ON_CONFLICT(table.AccountMetrics.TradingAccountID).
		DO_UPDATE(
			postgres.SET(
				table.AccountMetrics.TotalTrades.SET(table.AccountMetrics.EXCLUDED.TotalTrades),
				table.AccountMetrics.TotalBuyQty.SET(table.AccountMetrics.EXCLUDED.TotalBuyQty),
				table.AccountMetrics.TotalSellQty.SET(table.AccountMetrics.EXCLUDED.TotalSellQty),
				table.AccountMetrics.TotalBuyCost.SET(table.AccountMetrics.EXCLUDED.TotalBuyCost),
				table.AccountMetrics.TotalSellRevenue.SET(table.AccountMetrics.EXCLUDED.TotalSellRevenue),
				table.AccountMetrics.NetProfitLoss.SET(table.AccountMetrics.EXCLUDED.NetProfitLoss),
				table.AccountMetrics.SymbolsTraded.SET(table.AccountMetrics.EXCLUDED.SymbolsTraded),
				table.AccountMetrics.LastUpdated.SET(table.AccountMetrics.EXCLUDED.LastUpdated),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert account metrics: %w", err)
	}

	deleteQuery := table.SymbolPosition.
		DELETE().
		WHERE(table.SymbolPosition.TradingAccountID.EQ(postgres.UUID(metrics.TradingAccountID)))

	_, err = deleteQuery.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to clear symbol positions: %w", err)
	}

	if len(positions) == 0 {
		return nil
	}

	for i := range positions {
		positions[i].LastUpdated = now
	}
	insertQuery := table.SymbolPosition.
		INSERT(table.SymbolPosition.MutableColumns).
		MODELS(positions)

	_, err = insertQuery.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert %d symbol positions: %w", len(positions), err)
	}

	return nil
}

func (h accountMetricsRepositoryHandler) Get(tradingAccountID uuid.UUID) (*model.AccountMetrics, []model.SymbolPosition, error) {
	metricsQuery := table.AccountMetrics.
		SELECT(table.AccountMetrics.AllColumns).
		WHERE(table.AccountMetrics.TradingAccountID.EQ(postgres.UUID(tradingAccountID)))

	metrics := model.AccountMetrics{}
	err := metricsQuery.Query(h.Db, &metrics)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get metrics for account %s: %w", tradingAccountID, err)
	}

	positionsQuery := table.SymbolPosition.
		SELECT(table.SymbolPosition.AllColumns).
		WHERE(table.SymbolPosition.TradingAccountID.EQ(postgres.UUID(tradingAccountID))).
		ORDER_BY(table.SymbolPosition.Symbol.ASC())

	positions := []model.SymbolPosition{}
	err = positionsQuery.Query(h.Db, &positions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get symbol positions for account %s: %w", tradingAccountID, err)
	}

	return &metrics, positions, nil
}
