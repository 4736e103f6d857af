package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
	"github.com/SscSPs/fx_deals_warehouse/internal/models"
	"github.com/SscSPs/fx_deals_warehouse/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// sortColumns whitelists the API sort fields against real columns. Anything
// else falls back to created_at.
var sortColumns = map[string]string{
	"dealId":       "deal_uid",
	"fromCurrency": "from_currency",
	"toCurrency":   "to_currency",
	"timestamp":    "deal_timestamp",
	"amount":       "deal_amount",
	"createdAt":    "created_at",
}

type PgxDealRepository struct {
	BaseRepository
}

// NewPgxDealRepository creates a new repository for deal data.
func NewPgxDealRepository(pool PGXPool) portsrepo.DealRepositoryFacade {
	return &PgxDealRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DealRepositoryFacade = (*PgxDealRepository)(nil)

// SaveDeal inserts a new deal row. The unique constraint on deal_uid is the
// authoritative duplicate guard; a 23505 violation maps to ErrDuplicate so a
// concurrent identical submission that beat us to the insert is reported the
// same way as one caught by the pre-check.
func (r *PgxDealRepository) SaveDeal(ctx context.Context, deal domain.Deal) (*domain.Deal, error) {
	modelDeal := mapping.ToModelDeal(deal)

	query := `
		INSERT INTO fx_deals (deal_uid, from_currency, to_currency, deal_timestamp, deal_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelDeal.DealID,
		modelDeal.FromCurrency,
		modelDeal.ToCurrency,
		modelDeal.Timestamp,
		modelDeal.Amount,
		modelDeal.CreatedAt,
	).Scan(&modelDeal.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save deal %s: %w", modelDeal.DealID, err)
	}

	domainDeal := mapping.ToDomainDeal(modelDeal)
	return &domainDeal, nil
}

// ExistsByDealID reports whether a deal with the given unique ID is stored.
func (r *PgxDealRepository) ExistsByDealID(ctx context.Context, dealID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM fx_deals WHERE deal_uid = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, dealID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence of deal %s: %w", dealID, err)
	}
	return exists, nil
}

// FindDealByID retrieves a deal by its caller-supplied unique ID.
func (r *PgxDealRepository) FindDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	query := `
		SELECT id, deal_uid, from_currency, to_currency, deal_timestamp, deal_amount, created_at
		FROM fx_deals
		WHERE deal_uid = $1;
	`
	var modelDeal models.Deal
	err := r.Pool.QueryRow(ctx, query, dealID).Scan(
		&modelDeal.ID,
		&modelDeal.DealID,
		&modelDeal.FromCurrency,
		&modelDeal.ToCurrency,
		&modelDeal.Timestamp,
		&modelDeal.Amount,
		&modelDeal.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deal by ID %s: %w", dealID, err)
	}

	domainDeal := mapping.ToDomainDeal(modelDeal)
	return &domainDeal, nil
}

// FindDealsPaged retrieves one page of deals and the total row count.
func (r *PgxDealRepository) FindDealsPaged(ctx context.Context, listQuery portsrepo.DealListQuery) ([]domain.Deal, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM fx_deals;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count deals: %w", err)
	}

	column, ok := sortColumns[listQuery.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if listQuery.SortDir == "asc" {
		direction = "ASC"
	}

	// column and direction are whitelisted above; only paging values are bound.
	query := fmt.Sprintf(`
		SELECT id, deal_uid, from_currency, to_currency, deal_timestamp, deal_amount, created_at
		FROM fx_deals
		ORDER BY %s %s, id %s
		LIMIT $1 OFFSET $2;
	`, column, direction, direction)

	rows, err := r.Pool.Query(ctx, query, listQuery.Size, listQuery.Page*listQuery.Size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query deals page: %w", err)
	}
	defer rows.Close()

	modelDeals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Deal, error) {
		var deal models.Deal
		err := row.Scan(
			&deal.ID,
			&deal.DealID,
			&deal.FromCurrency,
			&deal.ToCurrency,
			&deal.Timestamp,
			&deal.Amount,
			&deal.CreatedAt,
		)
		return deal, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan deals page: %w", err)
	}

	return mapping.ToDomainDealSlice(modelDeals), total, nil
}
