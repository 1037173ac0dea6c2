package repository

import (
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

// AlpacaRepository wraps the brokerage API used for trade sync. Only
// closed (filled) orders matter to the journal - a pending order is not
// yet an execution.
type AlpacaRepository interface {
	ListClosedOrders(after time.Time) ([]alpaca.Order, error)
	GetAccount() (*alpaca.Account, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	return &alpacaRepositoryHandler{
		Client: client,
	}
}

type alpacaRepositoryHandler struct {
	Client *alpaca.Client
}

func (h alpacaRepositoryHandler) ListClosedOrders(after time.Time) ([]alpaca.Order, error) {
	limit := 500
	orders, err := h.Client.GetOrders(alpaca.GetOrdersRequest{
		Status: "closed",
		After:  after,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list closed orders: %w", err)
	}

	return orders, nil
}

func (h alpacaRepositoryHandler) GetAccount() (*alpaca.Account, error) {
	account, err := h.Client.GetAccount()
	if err != nil {
		return nil, fmt.Errorf("failed to get alpaca account: %w", err)
	}

	return account, nil
}
