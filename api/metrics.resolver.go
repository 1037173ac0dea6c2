package api

import (
	"tradejournal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountMetricsResponse struct {
	TotalTrades      int                               `json:"totalTrades"`
	TotalBuyQty      decimal.Decimal                   `json:"totalBuyQty"`
	TotalSellQty     decimal.Decimal                   `json:"totalSellQty"`
	TotalBuyCost     decimal.Decimal                   `json:"totalBuyCost"`
	TotalSellRevenue decimal.Decimal                   `json:"totalSellRevenue"`
	NetProfitLoss    decimal.Decimal                   `json:"netProfitLoss"`
	SymbolsTraded    []string                          `json:"symbolsTraded"`
	SymbolPositions  map[string]SymbolPositionResponse `json:"symbolPositions"`
}

type SymbolPositionResponse struct {
	BuyQty       decimal.Decimal `json:"buyQty"`
	SellQty      decimal.Decimal `json:"sellQty"`
	Position     decimal.Decimal `json:"position"`
	AvgBuyPrice  decimal.Decimal `json:"avgBuyPrice"`
	AvgSellPrice decimal.Decimal `json:"avgSellPrice"`
	OpenPosition bool            `json:"openPosition"`
}

func accountMetricsResponseFromDomain(metrics domain.AccountMetrics) AccountMetricsResponse {
	positions := map[string]SymbolPositionResponse{}
	for symbol, p := range metrics.SymbolPositions {
		positions[symbol] = SymbolPositionResponse{
			BuyQty:       p.BuyQty,
			SellQty:      p.SellQty,
			Position:     p.Position,
			AvgBuyPrice:  p.AvgBuyPrice,
			AvgSellPrice: p.AvgSellPrice,
			OpenPosition: p.OpenPosition,
		}
	}

	return AccountMetricsResponse{
		TotalTrades:      metrics.TotalTrades,
		TotalBuyQty:      metrics.TotalBuyQty,
		TotalSellQty:     metrics.TotalSellQty,
		TotalBuyCost:     metrics.TotalBuyCost,
		TotalSellRevenue: metrics.TotalSellRevenue,
		NetProfitLoss:    metrics.NetProfitLoss,
		SymbolsTraded:    metrics.SymbolsTraded,
		SymbolPositions:  positions,
	}
}

func (m ApiHandler) getAccountMetrics(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	metrics, err := m.MetricsService.GetAccountMetrics(c.Request.Context(), account.TradingAccountID)
	if err != nil {
		// nothing cached yet; compute and store on first read
		metrics, err = m.MetricsService.RecomputeAccountMetrics(c.Request.Context(), account.TradingAccountID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
	}

	c.JSON(200, accountMetricsResponseFromDomain(*metrics))
}

func (m ApiHandler) recomputeAccountMetrics(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	metrics, err := m.MetricsService.RecomputeAccountMetrics(c.Request.Context(), account.TradingAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, accountMetricsResponseFromDomain(*metrics))
}
