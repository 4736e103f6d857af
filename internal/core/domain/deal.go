package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal represents one immutable FX transaction record in the warehouse.
// Deals are created via import only; they are never updated or deleted.
type Deal struct {
	ID           int64           `json:"id"`           // Surrogate key assigned by the database
	DealID       string          `json:"dealId"`       // Caller-supplied unique identifier (natural key)
	FromCurrency string          `json:"fromCurrency"` // ISO 4217 code, e.g. "USD"
	ToCurrency   string          `json:"toCurrency"`   // ISO 4217 code, e.g. "EUR"
	Timestamp    time.Time       `json:"timestamp"`    // When the deal was executed
	Amount       decimal.Decimal `json:"amount"`       // Denominated in FromCurrency
	CreatedAt    time.Time       `json:"createdAt"`    // Stamped at persistence time
}

// DealImportResult captures the outcome of importing a single deal within a
// batch. Each item in a batch succeeds or fails independently.
type DealImportResult struct {
	DealID  string `json:"dealId"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Deal    *Deal  `json:"deal,omitempty"`
}

// NewImportSuccess builds a successful batch item result.
func NewImportSuccess(deal *Deal) DealImportResult {
	return DealImportResult{
		DealID:  deal.DealID,
		Success: true,
		Message: "deal imported successfully",
		Deal:    deal,
	}
}

// NewImportFailure builds a failed batch item result.
func NewImportFailure(dealID, message string) DealImportResult {
	return DealImportResult{
		DealID:  dealID,
		Success: false,
		Message: message,
	}
}
