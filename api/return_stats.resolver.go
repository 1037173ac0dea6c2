package api

import (
	"github.com/gin-gonic/gin"
)

type ReturnStatsResponse struct {
	AnnualizedStdev  float64 `json:"annualizedStdev"`
	AnnualizedReturn float64 `json:"annualizedReturn"`
	SharpeRatio      float64 `json:"sharpeRatio"`
}

func (m ApiHandler) accountReturnStats(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	stats, err := m.PerformanceService.AccountReturnStats(c.Request.Context(), account.TradingAccountID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, ReturnStatsResponse{
		AnnualizedStdev:  stats.AnnualizedStdev,
		AnnualizedReturn: stats.AnnualizedReturn,
		SharpeRatio:      stats.SharpeRatio,
	})
}
