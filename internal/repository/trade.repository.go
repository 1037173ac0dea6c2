package repository

import (
	"database/sql"
	"fmt"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TradeListFilter struct {
	Symbol    *string
	Side      *model.TradeSide
	StartDate *time.Time
	EndDate   *time.Time
}

type TradeRepository interface {
	Add(tx *sql.Tx, t model.Trade) (*model.Trade, error)
	AddMany(tx *sql.Tx, trades []model.Trade) ([]model.Trade, error)
	// List returns trades in replay order: executed_at, then created_at,
	// then id, so repeated reads replay identically.
	List(tradingAccountID uuid.UUID, filter TradeListFilter) ([]model.Trade, error)
	Delete(tx *sql.Tx, tradeID uuid.UUID) error
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) Add(tx *sql.Tx, t model.Trade) (*model.Trade, error) {
	t.CreatedAt = time.Now().UTC()
	query := table.Trade.
		INSERT(table.Trade.MutableColumns).
		MODEL(t).
		RETURNING(table.Trade.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Trade{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade: %w", err)
	}

	return &out, nil
}

func (h tradeRepositoryHandler) AddMany(tx *sql.Tx, trades []model.Trade) ([]model.Trade, error) {
	if len(trades) == 0 {
		return []model.Trade{}, nil
	}
	now := time.Now().UTC()
	for i := range trades {
		trades[i].CreatedAt = now
	}

	query := table.Trade.
		INSERT(table.Trade.MutableColumns).
		MODELS(trades).
		RETURNING(table.Trade.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.Trade{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %d trades: %w", len(trades), err)
	}

	return out, nil
}

func (h tradeRepositoryHandler) List(tradingAccountID uuid.UUID, filter TradeListFilter) ([]model.Trade, error) {
	where := []postgres.BoolExpression{
		table.Trade.TradingAccountID.EQ(postgres.UUID(tradingAccountID)),
	}
	if filter.Symbol != nil {
		where = append(where, table.Trade.Symbol.LIKE(postgres.String("%"+*filter.Symbol+"%")))
	}
	if filter.Side != nil {
		where = append(where, table.Trade.Side.EQ(postgres.String(filter.Side.String())))
	}
	if filter.StartDate != nil {
		where = append(where, table.Trade.ExecutedAt.GT_EQ(postgres.TimestampzT(*filter.StartDate)))
	}
	if filter.EndDate != nil {
		where = append(where, table.Trade.ExecutedAt.LT_EQ(postgres.TimestampzT(*filter.EndDate)))
	}

	query := table.Trade.
		SELECT(table.Trade.AllColumns).
		WHERE(postgres.AND(where...)).
		ORDER_BY(
			table.Trade.ExecutedAt.ASC(),
			table.Trade.CreatedAt.ASC(),
			table.Trade.TradeID.ASC(),
		)

	out := []model.Trade{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for account %s: %w", tradingAccountID, err)
	}

	return out, nil
}

func (h tradeRepositoryHandler) Delete(tx *sql.Tx, tradeID uuid.UUID) error {
	query := table.Trade.
		DELETE().
		WHERE(table.Trade.TradeID.EQ(postgres.UUID(tradeID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete trade %s: %w", tradeID, err)
	}

	return nil
}
