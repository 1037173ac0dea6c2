package util

import (
	"tradejournal/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

func StringPointer(s string) *string {
	return &s
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TradeSidePointer(s model.TradeSide) *model.TradeSide {
	return &s
}
