package api

import (
	"time"

	"tradejournal/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type DailyPerformanceResponse struct {
	Date             string          `json:"date"`
	StartingBalance  decimal.Decimal `json:"startingBalance"`
	RealizedPL       decimal.Decimal `json:"realizedPL"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
	DailyReturn      decimal.Decimal `json:"dailyReturn"`
	CumulativeReturn decimal.Decimal `json:"cumulativeReturn"`
}

func dailyPerformanceResponseFromDomain(entries []domain.DailyPerformanceEntry) []DailyPerformanceResponse {
	out := []DailyPerformanceResponse{}
	for _, e := range entries {
		out = append(out, DailyPerformanceResponse{
			Date:             e.Date.Format(time.DateOnly),
			StartingBalance:  e.StartingBalance,
			RealizedPL:       e.RealizedPL,
			EndingBalance:    e.EndingBalance,
			DailyReturn:      e.DailyReturn,
			CumulativeReturn: e.CumulativeReturn,
		})
	}

	return out
}

func (m ApiHandler) accountDailyPerformance(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	entries, err := m.PerformanceService.AccountDailyPerformance(c.Request.Context(), account.TradingAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, dailyPerformanceResponseFromDomain(entries))
}

func (m ApiHandler) userDailyPerformance(c *gin.Context) {
	userID, err := userAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	entries, err := m.PerformanceService.UserDailyPerformance(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, dailyPerformanceResponseFromDomain(entries))
}
