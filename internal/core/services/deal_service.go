package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/SscSPs/fx_deals_warehouse/internal/platform/logging"
)

// DealService drives deals from submission to persistence and serves
// retrieval. It holds no mutable state of its own; the repository is the
// single source of truth, so concurrent use is safe.
type DealService struct {
	dealRepo portsrepo.DealRepositoryFacade
	now      func() time.Time
}

// NewDealService creates a DealService backed by the given repository.
func NewDealService(dealRepo portsrepo.DealRepositoryFacade) *DealService {
	return &DealService{dealRepo: dealRepo, now: time.Now}
}

// Ensure implementation matches interface
var _ portssvc.DealSvcFacade = (*DealService)(nil)

// ImportDeal validates and persists a single deal.
//
// The duplicate pre-check runs before business validation so that
// re-submitting an already-accepted deal is always reported as a duplicate,
// even if validation rules change between submissions. The pre-check is only
// a fast path: the unique constraint on deal_uid is the final authority, and
// a constraint violation at insert time surfaces as the same duplicate error.
func (s *DealService) ImportDeal(ctx context.Context, req dto.CreateDealRequest) (*domain.Deal, error) {
	exists, err := s.dealRepo.ExistsByDealID(ctx, req.DealID)
	if err != nil {
		return nil, fmt.Errorf("failed to check deal existence for %s: %w", req.DealID, err)
	}
	if exists {
		return nil, apperrors.NewConflictError(fmt.Sprintf("deal with ID '%s' already exists", req.DealID))
	}

	if err := ValidateDealShape(req); err != nil {
		return nil, err
	}
	if err := ValidateDeal(req, s.now()); err != nil {
		return nil, err
	}

	deal := domain.Deal{
		DealID:       req.DealID,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Timestamp:    req.Timestamp.Time,
		Amount:       req.Amount,
		CreatedAt:    s.now(),
	}

	saved, err := s.dealRepo.SaveDeal(ctx, deal)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race against a concurrent identical submission.
			return nil, apperrors.NewConflictError(fmt.Sprintf("deal with ID '%s' already exists", req.DealID))
		}
		return nil, fmt.Errorf("failed to save deal %s: %w", req.DealID, err)
	}
	return saved, nil
}

// ImportDeals processes each deal independently in input order. There is no
// transaction spanning the batch: a failed item never prevents, undoes, or
// blocks any other item. Every error kind, including storage failures, is
// captured into that item's result rather than aborting the loop.
func (s *DealService) ImportDeals(ctx context.Context, reqs []dto.CreateDealRequest) []domain.DealImportResult {
	logger := logging.FromCtx(ctx)
	results := make([]domain.DealImportResult, len(reqs))
	for i, req := range reqs {
		deal, err := s.ImportDeal(ctx, req)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrValidation) {
				logger.Warn("Rejected deal in batch import",
					slog.String("deal_id", req.DealID), slog.String("reason", err.Error()))
				results[i] = domain.NewImportFailure(req.DealID, err.Error())
			} else {
				logger.Error("Unexpected error importing deal in batch",
					slog.String("deal_id", req.DealID), slog.String("error", err.Error()))
				results[i] = domain.NewImportFailure(req.DealID, "unexpected error importing deal")
			}
			continue
		}
		results[i] = domain.NewImportSuccess(deal)
	}
	return results
}

// GetDealByID retrieves a deal by its caller-supplied unique ID.
func (s *DealService) GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	deal, err := s.dealRepo.FindDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("deal with ID '%s' not found", dealID))
		}
		return nil, fmt.Errorf("failed to get deal by ID %s: %w", dealID, err)
	}
	return deal, nil
}

// ListDeals retrieves one page of deals, applying the defaults for any unset
// parameter (page 0, size 20, createdAt descending).
func (s *DealService) ListDeals(ctx context.Context, params portssvc.ListDealsParams) ([]domain.Deal, int64, error) {
	params = params.Sanitized()
	query := portsrepo.DealListQuery{
		Page:    params.Page,
		Size:    params.Size,
		SortBy:  params.SortBy,
		SortDir: params.SortDir,
	}

	deals, total, err := s.dealRepo.FindDealsPaged(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deals: %w", err)
	}
	if deals == nil {
		deals = []domain.Deal{}
	}
	return deals, total, nil
}
