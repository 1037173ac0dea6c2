package api

import (
	"fmt"
	"time"

	"tradejournal/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountName    string          `json:"accountName" binding:"required"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Currency       string          `json:"currency"`
	IsPaperTrading bool            `json:"isPaperTrading"`
}

type AccountResponse struct {
	TradingAccountID uuid.UUID       `json:"tradingAccountID"`
	AccountName      string          `json:"accountName"`
	InitialBalance   decimal.Decimal `json:"initialBalance"`
	Currency         string          `json:"currency"`
	IsPaperTrading   bool            `json:"isPaperTrading"`
	LastSync         *string         `json:"lastSync"`
	CreatedAt        string          `json:"createdAt"`
}

func accountResponseFromModel(account model.TradingAccount) AccountResponse {
	var lastSync *string
	if account.LastSync != nil {
		lastSync = strPtr(account.LastSync.Format(time.RFC3339))
	}

	return AccountResponse{
		TradingAccountID: account.TradingAccountID,
		AccountName:      account.AccountName,
		InitialBalance:   account.InitialBalance,
		Currency:         account.Currency,
		IsPaperTrading:   account.IsPaperTrading,
		LastSync:         lastSync,
		CreatedAt:        account.CreatedAt.Format(time.RFC3339),
	}
}

func (m ApiHandler) createAccount(c *gin.Context) {
	userID, err := userAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody CreateAccountRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
		return
	}
	if requestBody.InitialBalance.IsNegative() {
		returnErrorJsonCode(fmt.Errorf("initial balance must not be negative"), c, 400)
		return
	}

	currency := requestBody.Currency
	if currency == "" {
		currency = "USD"
	}

	account, err := m.TradingAccountRepository.Add(nil, model.TradingAccount{
		UserAccountID:  userID,
		AccountName:    requestBody.AccountName,
		InitialBalance: requestBody.InitialBalance,
		Currency:       currency,
		IsPaperTrading: requestBody.IsPaperTrading,
		IsActive:       true,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, accountResponseFromModel(*account))
}

func (m ApiHandler) listAccounts(c *gin.Context) {
	userID, err := userAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	accounts, err := m.TradingAccountRepository.List(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []AccountResponse{}
	for _, account := range accounts {
		out = append(out, accountResponseFromModel(account))
	}

	c.JSON(200, out)
}

func (m ApiHandler) deleteAccount(c *gin.Context) {
	account, err := m.ownedAccount(c)
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	err = m.TradingAccountRepository.Delete(nil, account.TradingAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"deleted": account.TradingAccountID})
}
