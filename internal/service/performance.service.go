package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tradejournal/internal/calculator"
	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/domain"
	"tradejournal/internal/logger"
	"tradejournal/internal/repository"
	"tradejournal/pkg/riskfree"

	"github.com/google/uuid"
)

// PerformanceService replays trade history into the read-side views:
// daily performance series, open-position snapshots, return statistics
// and the AI-written review. All views are computed from the trade log
// on every call - nothing here is cached.
type PerformanceService interface {
	AccountDailyPerformance(ctx context.Context, tradingAccountID uuid.UUID) ([]domain.DailyPerformanceEntry, error)
	// UserDailyPerformance merges the series of every active account
	// owned by the user into one portfolio-level series.
	UserDailyPerformance(ctx context.Context, userAccountID uuid.UUID) ([]domain.DailyPerformanceEntry, error)
	AccountOpenAssets(ctx context.Context, tradingAccountID uuid.UUID) ([]domain.OpenAsset, error)
	UserOpenAssets(ctx context.Context, userAccountID uuid.UUID) ([]domain.OpenAsset, error)
	AccountReturnStats(ctx context.Context, tradingAccountID uuid.UUID) (*domain.ReturnStats, error)
	ReviewAccountPerformance(ctx context.Context, tradingAccountID uuid.UUID) (string, error)
}

type performanceServiceHandler struct {
	TradingAccountRepository repository.TradingAccountRepository
	TradeRepository          repository.TradeRepository
	PriceRepository          repository.PriceRepository
	GptRepository            repository.GptRepository
	RiskFreeClient           riskfree.Client
	// Location sets the day boundary for grouping trades into calendar
	// days. Nil means UTC.
	Location *time.Location
}

func NewPerformanceService(
	tradingAccountRepository repository.TradingAccountRepository,
	tradeRepository repository.TradeRepository,
	priceRepository repository.PriceRepository,
	gptRepository repository.GptRepository,
	riskFreeClient riskfree.Client,
	location *time.Location,
) PerformanceService {
	return performanceServiceHandler{
		TradingAccountRepository: tradingAccountRepository,
		TradeRepository:          tradeRepository,
		PriceRepository:          priceRepository,
		GptRepository:            gptRepository,
		RiskFreeClient:           riskFreeClient,
		Location:                 location,
	}
}

func (h performanceServiceHandler) AccountDailyPerformance(ctx context.Context, tradingAccountID uuid.UUID) ([]domain.DailyPerformanceEntry, error) {
	account, err := h.TradingAccountRepository.Get(tradingAccountID)
	if err != nil {
		return nil, err
	}

	trades, err := h.TradeRepository.List(tradingAccountID, repository.TradeListFilter{})
	if err != nil {
		return nil, err
	}

	return calculator.DailyPerformance(trades, account.InitialBalance, h.Location), nil
}

func (h performanceServiceHandler) UserDailyPerformance(ctx context.Context, userAccountID uuid.UUID) ([]domain.DailyPerformanceEntry, error) {
	accounts, err := h.TradingAccountRepository.List(userAccountID)
	if err != nil {
		return nil, err
	}

	accountSeries := [][]domain.DailyPerformanceEntry{}
	for _, account := range accounts {
		trades, err := h.TradeRepository.List(account.TradingAccountID, repository.TradeListFilter{})
		if err != nil {
			return nil, err
		}
		accountSeries = append(accountSeries, calculator.DailyPerformance(trades, account.InitialBalance, h.Location))
	}

	return calculator.MergeDailyPerformance(accountSeries), nil
}

func (h performanceServiceHandler) AccountOpenAssets(ctx context.Context, tradingAccountID uuid.UUID) ([]domain.OpenAsset, error) {
	trades, err := h.TradeRepository.List(tradingAccountID, repository.TradeListFilter{})
	if err != nil {
		return nil, err
	}

	prices := h.PriceRepository.GetLatestPrices(ctx, openSymbols(trades))

	return calculator.OpenAssets(trades, prices), nil
}

func (h performanceServiceHandler) UserOpenAssets(ctx context.Context, userAccountID uuid.UUID) ([]domain.OpenAsset, error) {
	accounts, err := h.TradingAccountRepository.List(userAccountID)
	if err != nil {
		return nil, err
	}

	accountAssets := [][]domain.OpenAsset{}
	allSymbols := map[string]bool{}
	for _, account := range accounts {
		trades, err := h.TradeRepository.List(account.TradingAccountID, repository.TradeListFilter{})
		if err != nil {
			return nil, err
		}
		assets := calculator.OpenAssets(trades, nil)
		for _, a := range assets {
			allSymbols[a.Symbol] = true
		}
		accountAssets = append(accountAssets, assets)
	}

	symbols := []string{}
	for s := range allSymbols {
		symbols = append(symbols, s)
	}
	prices := h.PriceRepository.GetLatestPrices(ctx, symbols)

	return calculator.MergeOpenAssets(accountAssets, prices), nil
}

// riskFreeTenorMonths picks the treasury tenor used as the Sharpe
// risk-free rate. Three months tracks what the backtest literature
// usually assumes for retail horizons.
const riskFreeTenorMonths = 3

func (h performanceServiceHandler) AccountReturnStats(ctx context.Context, tradingAccountID uuid.UUID) (*domain.ReturnStats, error) {
	log := logger.FromContext(ctx)

	entries, err := h.AccountDailyPerformance(ctx, tradingAccountID)
	if err != nil {
		return nil, err
	}

	riskFreeRate := 0.0
	if h.RiskFreeClient != nil {
		rate, err := h.RiskFreeClient.AnnualRate(ctx, time.Now().UTC(), riskFreeTenorMonths)
		if err != nil {
			log.Warnf("failed to fetch risk free rate, using 0: %v", err)
		} else {
			riskFreeRate = rate
		}
	}

	return calculator.ReturnStats(entries, riskFreeRate)
}

func (h performanceServiceHandler) ReviewAccountPerformance(ctx context.Context, tradingAccountID uuid.UUID) (string, error) {
	if h.GptRepository == nil {
		return "", fmt.Errorf("performance review is not configured")
	}

	entries, err := h.AccountDailyPerformance(ctx, tradingAccountID)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("account %s has no trading activity to review", tradingAccountID)
	}

	assets, err := h.AccountOpenAssets(ctx, tradingAccountID)
	if err != nil {
		return "", err
	}

	trades, err := h.TradeRepository.List(tradingAccountID, repository.TradeListFilter{})
	if err != nil {
		return "", err
	}
	metrics := calculator.AccountMetrics(trades)

	return h.GptRepository.ReviewPerformance(ctx, performanceSummary(entries, assets, metrics))
}

// performanceSummary renders the review inputs as plain text. The model
// only sees what's written here, so every number in the review should
// be traceable to a line below.
func performanceSummary(entries []domain.DailyPerformanceEntry, assets []domain.OpenAsset, metrics domain.AccountMetrics) string {
	var sb strings.Builder

	sb.WriteString("daily performance:\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf(
			"%s: realized pl %s, ending balance %s, daily return %s%%, cumulative return %s%%\n",
			e.Date.Format(time.DateOnly),
			e.RealizedPL.String(),
			e.EndingBalance.String(),
			e.DailyReturn.String(),
			e.CumulativeReturn.String(),
		))
	}

	sb.WriteString(fmt.Sprintf(
		"\ntotals: %d trades, net profit/loss %s across symbols %s\n",
		metrics.TotalTrades,
		metrics.NetProfitLoss.String(),
		strings.Join(metrics.SymbolsTraded, ", "),
	))

	sb.WriteString("\nopen positions:\n")
	if len(assets) == 0 {
		sb.WriteString("none\n")
	}
	for _, a := range assets {
		line := fmt.Sprintf("%s: %s shares, avg cost %s, total cost %s", a.Symbol, a.Quantity.String(), a.AvgBuyPrice.String(), a.TotalCost.String())
		if a.UnrealizedPL != nil {
			line += fmt.Sprintf(", unrealized pl %s", a.UnrealizedPL.String())
		}
		sb.WriteString(line + "\n")
	}

	return sb.String()
}

// openSymbols returns the symbols that could still have open lots. A
// symbol whose buys and sells exactly cancel slips through, but pricing
// an extra symbol is harmless.
func openSymbols(trades []model.Trade) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, t := range trades {
		if t.Side == model.TradeSide_Buy && !seen[t.Symbol] {
			seen[t.Symbol] = true
			out = append(out, t.Symbol)
		}
	}

	return out
}
