package api

import (
	"tradejournal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OpenAssetResponse struct {
	Symbol       string           `json:"symbol"`
	Quantity     decimal.Decimal  `json:"quantity"`
	AvgBuyPrice  decimal.Decimal  `json:"avgBuyPrice"`
	TotalCost    decimal.Decimal  `json:"totalCost"`
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
	UnrealizedPL *decimal.Decimal `json:"unrealizedPL"`
}

func openAssetResponseFromDomain(assets []domain.OpenAsset) []OpenAssetResponse {
	out := []OpenAssetResponse{}
	for _, a := range assets {
		out = append(out, OpenAssetResponse{
			Symbol:       a.Symbol,
			Quantity:     a.Quantity,
			AvgBuyPrice:  a.AvgBuyPrice,
			TotalCost:    a.TotalCost,
			CurrentPrice: a.CurrentPrice,
			UnrealizedPL: a.UnrealizedPL,
		})
	}

	return out
}

func (m ApiHandler) accountOpenAssets(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	assets, err := m.PerformanceService.AccountOpenAssets(c.Request.Context(), account.TradingAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, openAssetResponseFromDomain(assets))
}

func (m ApiHandler) userOpenAssets(c *gin.Context) {
	userID, err := userAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	assets, err := m.PerformanceService.UserOpenAssets(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, openAssetResponseFromDomain(assets))
}
