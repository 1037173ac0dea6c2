package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// importTrades accepts a multipart upload under the "file" field, or a
// raw CSV body when no multipart form is present.
func (m ApiHandler) importTrades(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	reader := c.Request.Body
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to open uploaded file: %w", err), c)
			return
		}
		defer f.Close()
		reader = f
	}

	trades, err := m.ImportService.ImportTrades(c.Request.Context(), account.TradingAccountID, reader)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("import failed: %w", err), c, 400)
		return
	}

	c.JSON(200, gin.H{"imported": len(trades)})
}
