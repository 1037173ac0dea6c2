package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/repository"

	"github.com/google/uuid"
	"github.com/maja42/goval"
)

// TradeFilterService screens a trade log with a user-supplied boolean
// expression, e.g.
//
//	symbol == "AAPL" && price > 150 && side == "BUY"
//
// Expressions see one trade at a time; a trade is kept when the
// expression evaluates to true. Available variables: symbol, side,
// quantity, price, commission, value, strategy, notes, executedAt.
type TradeFilterService interface {
	FilterTrades(ctx context.Context, tradingAccountID uuid.UUID, expression string) ([]model.Trade, error)
}

type tradeFilterServiceHandler struct {
	TradeRepository repository.TradeRepository
}

func NewTradeFilterService(tradeRepository repository.TradeRepository) TradeFilterService {
	return tradeFilterServiceHandler{
		TradeRepository: tradeRepository,
	}
}

func (h tradeFilterServiceHandler) FilterTrades(ctx context.Context, tradingAccountID uuid.UUID, expression string) ([]model.Trade, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("filter expression must not be empty")
	}

	trades, err := h.TradeRepository.List(tradingAccountID, repository.TradeListFilter{})
	if err != nil {
		return nil, err
	}

	eval := goval.NewEvaluator()

	out := []model.Trade{}
	for _, trade := range trades {
		result, err := eval.Evaluate(expression, tradeVariables(trade), tradeFilterFunctions(trade))
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate filter expression: %w", err)
		}
		keep, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("filter expression must evaluate to a boolean, got %T", result)
		}
		if keep {
			out = append(out, trade)
		}
	}

	return out, nil
}

func tradeVariables(trade model.Trade) map[string]interface{} {
	strategy := ""
	if trade.Strategy != nil {
		strategy = *trade.Strategy
	}
	notes := ""
	if trade.Notes != nil {
		notes = *trade.Notes
	}

	return map[string]interface{}{
		"symbol":     trade.Symbol,
		"side":       trade.Side.String(),
		"quantity":   trade.Quantity.InexactFloat64(),
		"price":      trade.Price.InexactFloat64(),
		"commission": trade.Commission.InexactFloat64(),
		"value":      trade.Quantity.Mul(trade.Price).InexactFloat64(),
		"strategy":   strategy,
		"notes":      notes,
		"executedAt": trade.ExecutedAt.UTC().Format(time.RFC3339),
	}
}

func tradeFilterFunctions(trade model.Trade) map[string]goval.ExpressionFunction {
	parseDateArg := func(name string, args []interface{}) (time.Time, error) {
		if len(args) != 1 {
			return time.Time{}, fmt.Errorf("%s() expects 1 argument", name)
		}
		s, ok := args[0].(string)
		if !ok {
			return time.Time{}, fmt.Errorf("%s() expects a YYYY-MM-DD string", name)
		}
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%s(): %w", name, err)
		}
		return d, nil
	}

	return map[string]goval.ExpressionFunction{
		"contains": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("contains() expects 2 arguments")
			}
			s, ok1 := args[0].(string)
			substr, ok2 := args[1].(string)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("contains() expects string arguments")
			}
			return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr)), nil
		},
		"before": func(args ...interface{}) (interface{}, error) {
			d, err := parseDateArg("before", args)
			if err != nil {
				return nil, err
			}
			return trade.ExecutedAt.Before(d), nil
		},
		"after": func(args ...interface{}) (interface{}, error) {
			d, err := parseDateArg("after", args)
			if err != nil {
				return nil, err
			}
			// after() is inclusive of the named day
			return !trade.ExecutedAt.Before(d), nil
		},
	}
}
