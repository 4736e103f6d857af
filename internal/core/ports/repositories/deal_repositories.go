package repositories

import (
	"context"

	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
)

// DealListQuery carries sanitized paging and sorting parameters for the
// repository. SortBy uses the API field names; the repository maps them to
// columns and ignores anything outside its whitelist.
type DealListQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// DealReader defines read operations for deal data
type DealReader interface {
	// ExistsByDealID reports whether a deal with the given caller-supplied ID is stored.
	ExistsByDealID(ctx context.Context, dealID string) (bool, error)

	// FindDealByID retrieves a deal by its caller-supplied unique ID.
	FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error)

	// FindDealsPaged retrieves one page of deals plus the total row count.
	FindDealsPaged(ctx context.Context, query DealListQuery) ([]domain.Deal, int64, error)
}

// DealWriter defines write operations for deal data
type DealWriter interface {
	// SaveDeal inserts a new deal. The fx_deals unique constraint on deal_uid
	// is the final authority against concurrent duplicate submissions; a
	// violation surfaces as apperrors.ErrDuplicate.
	SaveDeal(ctx context.Context, deal domain.Deal) (*domain.Deal, error)
}

// DealRepositoryFacade combines all deal-related repository interfaces
type DealRepositoryFacade interface {
	DealReader
	DealWriter
}
