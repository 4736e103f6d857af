package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DealTime accepts both RFC3339 timestamps and the zone-less
// "2006-01-02T15:04:05" form (interpreted as UTC) that upstream trading
// systems commonly emit. Responses are always serialized as RFC3339.
type DealTime struct {
	time.Time
}

const zonelessLayout = "2006-01-02T15:04:05"

func (t *DealTime) UnmarshalJSON(data []byte) error {
	// Only the JSON null literal is a no-op; the quoted string "null" is an
	// invalid timestamp like any other.
	if string(data) == "null" {
		return nil
	}
	s := strings.Trim(string(data), `"`)
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.Parse(zonelessLayout, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: expected RFC3339 or %s", s, zonelessLayout)
		}
		parsed = parsed.UTC()
	}
	t.Time = parsed
	return nil
}

func (t DealTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// CreateDealRequest defines the wire shape of a single deal submission.
// Field-shape constraints live here as binding tags; business rules
// (ISO registry membership, pair distinctness, timestamp/amount bounds)
// are enforced in the service layer.
type CreateDealRequest struct {
	DealID       string          `json:"dealId" binding:"required,max=100"`
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,uppercase"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,uppercase"`
	Timestamp    DealTime        `json:"timestamp" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// DealResponse defines the data returned for a persisted deal.
type DealResponse struct {
	ID           int64           `json:"id"`
	DealID       string          `json:"dealId"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Timestamp    time.Time       `json:"timestamp"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToDealResponse converts a domain.Deal to its response DTO.
func ToDealResponse(d *domain.Deal) DealResponse {
	return DealResponse{
		ID:           d.ID,
		DealID:       d.DealID,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		Timestamp:    d.Timestamp,
		Amount:       d.Amount,
		CreatedAt:    d.CreatedAt,
	}
}

// DealImportResultResponse is the per-item outcome within a batch response.
type DealImportResultResponse struct {
	DealID  string        `json:"dealId"`
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Deal    *DealResponse `json:"deal,omitempty"`
}

// BatchImportDealsResponse aggregates the per-item outcomes of a batch
// import. Outcome order always matches submission order.
type BatchImportDealsResponse struct {
	TotalReceived int                        `json:"totalReceived"`
	SuccessCount  int                        `json:"successCount"`
	FailureCount  int                        `json:"failureCount"`
	Results       []DealImportResultResponse `json:"results"`
}

// ToBatchImportDealsResponse converts batch outcomes into the wire response.
func ToBatchImportDealsResponse(results []domain.DealImportResult) BatchImportDealsResponse {
	resp := BatchImportDealsResponse{
		TotalReceived: len(results),
		Results:       make([]DealImportResultResponse, len(results)),
	}
	for i, r := range results {
		item := DealImportResultResponse{
			DealID:  r.DealID,
			Success: r.Success,
			Message: r.Message,
		}
		if r.Deal != nil {
			dealResp := ToDealResponse(r.Deal)
			item.Deal = &dealResp
		}
		if r.Success {
			resp.SuccessCount++
		} else {
			resp.FailureCount++
		}
		resp.Results[i] = item
	}
	return resp
}

// ListDealsResponse is a page of deals plus paging metadata.
type ListDealsResponse struct {
	Items         []DealResponse `json:"items"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

// ToListDealsResponse builds a page response from domain deals and the total count.
func ToListDealsResponse(deals []domain.Deal, page, size int, total int64) ListDealsResponse {
	items := make([]DealResponse, len(deals))
	for i := range deals {
		items[i] = ToDealResponse(&deals[i])
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return ListDealsResponse{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
