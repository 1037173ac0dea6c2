package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) performanceReview(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	review, err := m.PerformanceService.ReviewAccountPerformance(c.Request.Context(), account.TradingAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"review": review})
}
