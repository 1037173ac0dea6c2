package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/logger"
	"tradejournal/internal/repository"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SyncService pulls executions from the brokerage into the trade log.
// Sync is idempotent: orders already imported (matched on the broker's
// order id) are skipped, so re-running after a partial failure is safe.
type SyncService interface {
	SyncAccount(ctx context.Context, tradingAccountID uuid.UUID) (int, error)
}

type syncServiceHandler struct {
	Db                       *sql.DB
	TradingAccountRepository repository.TradingAccountRepository
	TradeRepository          repository.TradeRepository
	AlpacaRepository         repository.AlpacaRepository
}

func NewSyncService(
	db *sql.DB,
	tradingAccountRepository repository.TradingAccountRepository,
	tradeRepository repository.TradeRepository,
	alpacaRepository repository.AlpacaRepository,
) SyncService {
	return syncServiceHandler{
		Db:                       db,
		TradingAccountRepository: tradingAccountRepository,
		TradeRepository:          tradeRepository,
		AlpacaRepository:         alpacaRepository,
	}
}

func (h syncServiceHandler) SyncAccount(ctx context.Context, tradingAccountID uuid.UUID) (int, error) {
	log := logger.FromContext(ctx)

	account, err := h.TradingAccountRepository.Get(tradingAccountID)
	if err != nil {
		return 0, err
	}

	// default lookback for an account that has never synced
	after := time.Now().UTC().AddDate(-1, 0, 0)
	if account.LastSync != nil {
		after = *account.LastSync
	}

	orders, err := h.AlpacaRepository.ListClosedOrders(after)
	if err != nil {
		return 0, err
	}

	existing, err := h.TradeRepository.List(tradingAccountID, repository.TradeListFilter{})
	if err != nil {
		return 0, err
	}
	seen := map[string]bool{}
	for _, t := range existing {
		if t.ProviderID != nil {
			seen[*t.ProviderID] = true
		}
	}

	syncedAt := time.Now().UTC()
	trades := []model.Trade{}
	for _, order := range orders {
		if seen[order.ID] {
			continue
		}
		trade, err := tradeFromAlpacaOrder(tradingAccountID, order)
		if err != nil {
			log.Warnf("skipping order %s: %v", order.ID, err)
			continue
		}
		trades = append(trades, *trade)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted, err := h.TradeRepository.AddMany(tx, trades)
	if err != nil {
		return 0, err
	}

	err = h.TradingAccountRepository.SetLastSync(tx, tradingAccountID, syncedAt)
	if err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("failed to commit sync: %w", err)
	}

	return len(inserted), nil
}

func tradeFromAlpacaOrder(tradingAccountID uuid.UUID, order alpaca.Order) (*model.Trade, error) {
	if order.FilledAt == nil || order.FilledAvgPrice == nil || order.FilledQty.IsZero() {
		return nil, fmt.Errorf("order was never filled")
	}

	var side model.TradeSide
	switch order.Side {
	case alpaca.Buy:
		side = model.TradeSide_Buy
	case alpaca.Sell:
		side = model.TradeSide_Sell
	default:
		return nil, fmt.Errorf("unrecognized order side %q", order.Side)
	}

	providerID := order.ID

	return &model.Trade{
		TradingAccountID: tradingAccountID,
		Symbol:           strings.ToUpper(order.Symbol),
		Side:             side,
		Quantity:         order.FilledQty,
		Price:            *order.FilledAvgPrice,
		Commission:       decimal.Zero,
		ProviderID:       &providerID,
		ExecutedAt:       order.FilledAt.UTC(),
	}, nil
}
