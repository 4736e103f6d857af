package services

import (
	"context"

	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
)

// Paging bounds and defaults for deal listing.
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
	DefaultSortBy   = "createdAt"
	DefaultSortDir  = "desc"
)

// ListDealsParams carries paging and sorting options for deal listing.
// Zero values fall back to the defaults (page 0, size 20, createdAt
// descending).
type ListDealsParams struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Sanitized returns a copy with defaults applied and out-of-range values
// clamped. The transport layer echoes these effective values back in paging
// metadata, so they must match what the service actually queries.
func (p ListDealsParams) Sanitized() ListDealsParams {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.SortDir != "asc" {
		p.SortDir = DefaultSortDir
	}
	return p
}

// DealReaderSvc defines read operations for deal data
type DealReaderSvc interface {
	// GetDealByID retrieves a deal by its caller-supplied unique ID.
	GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error)

	// ListDeals retrieves one page of deals plus the total count.
	ListDeals(ctx context.Context, params ListDealsParams) ([]domain.Deal, int64, error)
}

// DealWriterSvc defines import operations for deal data
type DealWriterSvc interface {
	// ImportDeal validates and persists a single deal.
	ImportDeal(ctx context.Context, req dto.CreateDealRequest) (*domain.Deal, error)

	// ImportDeals processes each deal independently; one outcome per input,
	// in input order. Failures never abort the batch.
	ImportDeals(ctx context.Context, reqs []dto.CreateDealRequest) []domain.DealImportResult
}

// DealSvcFacade combines all deal-related service interfaces
type DealSvcFacade interface {
	DealReaderSvc
	DealWriterSvc
}
