package mapping

import (
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	"github.com/SscSPs/fx_deals_warehouse/internal/models"
)

// ToModelDeal converts a domain.Deal to its persistence model.
func ToModelDeal(d domain.Deal) models.Deal {
	return models.Deal{
		ID:           d.ID,
		DealID:       d.DealID,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		Timestamp:    d.Timestamp,
		Amount:       d.Amount,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainDeal converts a persistence model back to the domain entity.
func ToDomainDeal(m models.Deal) domain.Deal {
	return domain.Deal{
		ID:           m.ID,
		DealID:       m.DealID,
		FromCurrency: m.FromCurrency,
		ToCurrency:   m.ToCurrency,
		Timestamp:    m.Timestamp,
		Amount:       m.Amount,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainDealSlice converts a slice of persistence models.
func ToDomainDealSlice(ms []models.Deal) []domain.Deal {
	deals := make([]domain.Deal, len(ms))
	for i, m := range ms {
		deals[i] = ToDomainDeal(m)
	}
	return deals
}
