package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is the persistence model for the fx_deals table.
type Deal struct {
	ID           int64           `json:"id"`
	DealID       string          `json:"dealId"` // Column deal_uid, unique
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Timestamp    time.Time       `json:"timestamp"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"createdAt"`
}
