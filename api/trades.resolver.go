package api

import (
	"fmt"
	"strings"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"
	"tradejournal/internal/repository"
	"tradejournal/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTradeRequest struct {
	Symbol     string          `json:"symbol" binding:"required"`
	Side       string          `json:"side" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Commission decimal.Decimal `json:"commission"`
	Strategy   *string         `json:"strategy"`
	Notes      *string         `json:"notes"`
	ExecutedAt time.Time       `json:"executedAt" binding:"required"`
}

type TradeResponse struct {
	TradeID    uuid.UUID       `json:"tradeID"`
	Symbol     string          `json:"symbol"`
	Side       string          `json:"side"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Commission decimal.Decimal `json:"commission"`
	Strategy   *string         `json:"strategy"`
	Notes      *string         `json:"notes"`
	ExecutedAt string          `json:"executedAt"`
}

func tradeResponseFromModel(trade model.Trade) TradeResponse {
	return TradeResponse{
		TradeID:    trade.TradeID,
		Symbol:     trade.Symbol,
		Side:       trade.Side.String(),
		Quantity:   trade.Quantity,
		Price:      trade.Price,
		Commission: trade.Commission,
		Strategy:   trade.Strategy,
		Notes:      trade.Notes,
		ExecutedAt: trade.ExecutedAt.UTC().Format(time.RFC3339),
	}
}

func (m ApiHandler) createTrade(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	var requestBody CreateTradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
		return
	}

	var side model.TradeSide
	switch strings.ToUpper(requestBody.Side) {
	case "BUY":
		side = model.TradeSide_Buy
	case "SELL":
		side = model.TradeSide_Sell
	default:
		returnErrorJsonCode(fmt.Errorf("invalid side %q: must be BUY or SELL", requestBody.Side), c, 400)
		return
	}
	if !requestBody.Quantity.IsPositive() {
		returnErrorJsonCode(fmt.Errorf("quantity must be positive"), c, 400)
		return
	}
	if !requestBody.Price.IsPositive() {
		returnErrorJsonCode(fmt.Errorf("price must be positive"), c, 400)
		return
	}
	if requestBody.Commission.IsNegative() {
		returnErrorJsonCode(fmt.Errorf("commission must not be negative"), c, 400)
		return
	}

	trade, err := m.TradeRepository.Add(nil, model.Trade{
		TradingAccountID: account.TradingAccountID,
		Symbol:           strings.ToUpper(requestBody.Symbol),
		Side:             side,
		Quantity:         requestBody.Quantity,
		Price:            requestBody.Price,
		Commission:       requestBody.Commission,
		Strategy:         requestBody.Strategy,
		Notes:            requestBody.Notes,
		ExecutedAt:       requestBody.ExecutedAt.UTC(),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeResponseFromModel(*trade))
}

func (m ApiHandler) listTrades(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	filter := repository.TradeListFilter{}
	if symbol := c.Query("symbol"); symbol != "" {
		filter.Symbol = util.StringPointer(strings.ToUpper(symbol))
	}
	if sideStr := c.Query("side"); sideStr != "" {
		switch strings.ToUpper(sideStr) {
		case "BUY":
			filter.Side = util.TradeSidePointer(model.TradeSide_Buy)
		case "SELL":
			filter.Side = util.TradeSidePointer(model.TradeSide_Sell)
		default:
			returnErrorJsonCode(fmt.Errorf("invalid side filter %q", sideStr), c, 400)
			return
		}
	}
	if startStr := c.Query("startDate"); startStr != "" {
		start, err := time.Parse(time.DateOnly, startStr)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid startDate: %w", err), c, 400)
			return
		}
		filter.StartDate = &start
	}
	if endStr := c.Query("endDate"); endStr != "" {
		end, err := time.Parse(time.DateOnly, endStr)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid endDate: %w", err), c, 400)
			return
		}
		// make the bound inclusive of the named day
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &end
	}

	trades, err := m.TradeRepository.List(account.TradingAccountID, filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []TradeResponse{}
	for _, trade := range trades {
		out = append(out, tradeResponseFromModel(trade))
	}

	c.JSON(200, out)
}

func (m ApiHandler) deleteTrade(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	tradeID, err := uuid.Parse(c.Param("tradeID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid trade id: %w", err), c, 400)
		return
	}

	// confirm the trade belongs to this account before deleting
	trades, err := m.TradeRepository.List(account.TradingAccountID, repository.TradeListFilter{})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	found := false
	for _, t := range trades {
		if t.TradeID == tradeID {
			found = true
			break
		}
	}
	if !found {
		returnErrorJsonCode(fmt.Errorf("trade not found"), c, 404)
		return
	}

	err = m.TradeRepository.Delete(nil, tradeID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"deleted": tradeID})
}

type FilterTradesRequest struct {
	Expression string `json:"expression" binding:"required"`
}

func (m ApiHandler) filterTrades(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	var requestBody FilterTradesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
		return
	}

	trades, err := m.TradeFilterService.FilterTrades(c.Request.Context(), account.TradingAccountID, requestBody.Expression)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out := []TradeResponse{}
	for _, trade := range trades {
		out = append(out, tradeResponseFromModel(trade))
	}

	c.JSON(200, out)
}
