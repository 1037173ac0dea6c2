package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/repository"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportService loads trade history from a CSV export. Validation is
// all-or-nothing: a single bad row rejects the whole file, so an import
// never leaves a partially loaded history behind.
type ImportService interface {
	ImportTrades(ctx context.Context, tradingAccountID uuid.UUID, csvData io.Reader) ([]model.Trade, error)
}

type importServiceHandler struct {
	TradeRepository repository.TradeRepository
}

func NewImportService(tradeRepository repository.TradeRepository) ImportService {
	return importServiceHandler{
		TradeRepository: tradeRepository,
	}
}

type csvTradeRow struct {
	Symbol     string `csv:"symbol"`
	Side       string `csv:"side"`
	Quantity   string `csv:"quantity"`
	Price      string `csv:"price"`
	Commission string `csv:"commission"`
	ExecutedAt string `csv:"executed_at"`
	Strategy   string `csv:"strategy"`
	Notes      string `csv:"notes"`
}

func (h importServiceHandler) ImportTrades(ctx context.Context, tradingAccountID uuid.UUID, csvData io.Reader) ([]model.Trade, error) {
	rows := []csvTradeRow{}
	err := gocsv.Unmarshal(csvData, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv contains no trades")
	}

	trades := make([]model.Trade, 0, len(rows))
	for i, row := range rows {
		trade, err := tradeFromCsvRow(tradingAccountID, row)
		if err != nil {
			// rows are 1-indexed and the header occupies the first line
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		trades = append(trades, *trade)
	}

	inserted, err := h.TradeRepository.AddMany(nil, trades)
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

// executedAtFormats are the accepted timestamp layouts. Both carry a
// zone offset; a wall-clock time with no zone is ambiguous across
// brokers and gets rejected rather than guessed at.
var executedAtFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -07:00",
}

func tradeFromCsvRow(tradingAccountID uuid.UUID, row csvTradeRow) (*model.Trade, error) {
	symbol := strings.ToUpper(strings.TrimSpace(row.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("missing symbol")
	}

	var side model.TradeSide
	switch strings.ToUpper(strings.TrimSpace(row.Side)) {
	case "BUY":
		side = model.TradeSide_Buy
	case "SELL":
		side = model.TradeSide_Sell
	default:
		return nil, fmt.Errorf("invalid side %q: must be BUY or SELL", row.Side)
	}

	quantity, err := decimal.NewFromString(strings.TrimSpace(row.Quantity))
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", row.Quantity, err)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("quantity must be positive, got %s", quantity)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", row.Price, err)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("price must be positive, got %s", price)
	}

	commission := decimal.Zero
	if strings.TrimSpace(row.Commission) != "" {
		commission, err = decimal.NewFromString(strings.TrimSpace(row.Commission))
		if err != nil {
			return nil, fmt.Errorf("invalid commission %q: %w", row.Commission, err)
		}
		if commission.IsNegative() {
			return nil, fmt.Errorf("commission must not be negative, got %s", commission)
		}
	}

	var executedAt time.Time
	parsed := false
	for _, format := range executedAtFormats {
		executedAt, err = time.Parse(format, strings.TrimSpace(row.ExecutedAt))
		if err == nil {
			parsed = true
			break
		}
	}
	if !parsed {
		return nil, fmt.Errorf("invalid executed_at %q: expected RFC3339 with timezone offset", row.ExecutedAt)
	}

	trade := model.Trade{
		TradingAccountID: tradingAccountID,
		Symbol:           symbol,
		Side:             side,
		Quantity:         quantity,
		Price:            price,
		Commission:       commission,
		ExecutedAt:       executedAt.UTC(),
	}
	if s := strings.TrimSpace(row.Strategy); s != "" {
		trade.Strategy = &s
	}
	if n := strings.TrimSpace(row.Notes); n != "" {
		trade.Notes = &n
	}

	return &trade, nil
}
