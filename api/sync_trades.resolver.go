package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) syncTrades(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	imported, err := m.SyncService.SyncAccount(c.Request.Context(), account.TradingAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"imported": imported})
}
