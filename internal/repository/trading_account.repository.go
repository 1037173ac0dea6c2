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

type TradingAccountRepository interface {
	Add(tx *sql.Tx, account model.TradingAccount) (*model.TradingAccount, error)
	Get(tradingAccountID uuid.UUID) (*model.TradingAccount, error)
	List(userAccountID uuid.UUID) ([]model.TradingAccount, error)
	SetLastSync(tx *sql.Tx, tradingAccountID uuid.UUID, syncedAt time.Time) error
	// Delete removes the account and, through fk cascade, its trades,
	// metrics and symbol positions.
	Delete(tx *sql.Tx, tradingAccountID uuid.UUID) error
}

type tradingAccountRepositoryHandler struct {
	Db *sql.DB
}

func NewTradingAccountRepository(db *sql.DB) TradingAccountRepository {
	return tradingAccountRepositoryHandler{Db: db}
}

func (h tradingAccountRepositoryHandler) Add(tx *sql.Tx, account model.TradingAccount) (*model.TradingAccount, error) {
	account.CreatedAt = time.Now().UTC()
	account.ModifiedAt = time.Now().UTC()
	query := table.TradingAccount.
		INSERT(table.TradingAccount.MutableColumns).
		MODEL(account).
		RETURNING(table.TradingAccount.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.TradingAccount{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trading account: %w", err)
	}

	return &out, nil
}

func (h tradingAccountRepositoryHandler) Get(tradingAccountID uuid.UUID) (*model.TradingAccount, error) {
	query := table.TradingAccount.
		SELECT(table.TradingAccount.AllColumns).
		WHERE(table.TradingAccount.TradingAccountID.EQ(postgres.UUID(tradingAccountID)))

	out := model.TradingAccount{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get trading account %s: %w", tradingAccountID, err)
	}

	return &out, nil
}

func (h tradingAccountRepositoryHandler) List(userAccountID uuid.UUID) ([]model.TradingAccount, error) {
	query := table.TradingAccount.
		SELECT(table.TradingAccount.AllColumns).
		WHERE(
			postgres.AND(
				table.TradingAccount.UserAccountID.EQ(postgres.UUID(userAccountID)),
				table.TradingAccount.IsActive.IS_TRUE(),
			),
		).
		ORDER_BY(table.TradingAccount.CreatedAt.ASC())

	out := []model.TradingAccount{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list trading accounts for user %s: %w", userAccountID, err)
	}

	return out, nil
}

func (h tradingAccountRepositoryHandler) SetLastSync(tx *sql.Tx, tradingAccountID uuid.UUID, syncedAt time.Time) error {
	query := table.TradingAccount.
		UPDATE(table.TradingAccount.LastSync, table.TradingAccount.ModifiedAt).
		SET(postgres.TimestampzT(syncedAt), postgres.TimestampzT(time.Now().UTC())).
		WHERE(table.TradingAccount.TradingAccountID.EQ(postgres.UUID(tradingAccountID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update last sync for account %s: %w", tradingAccountID, err)
	}

	return nil
}

func (h tradingAccountRepositoryHandler) Delete(tx *sql.Tx, tradingAccountID uuid.UUID) error {
	query := table.TradingAccount.
		DELETE().
		WHERE(table.TradingAccount.TradingAccountID.EQ(postgres.UUID(tradingAccountID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete trading account %s: %w", tradingAccountID, err)
	}

	return nil
}
