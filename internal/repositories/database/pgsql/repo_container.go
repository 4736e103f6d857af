package pgsql

import (
	portsrepo "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/repositories"
)

// RepositoryProvider bundles the concrete pgsql repositories.
type RepositoryProvider struct {
	Deal portsrepo.DealRepositoryFacade
}

// NewRepositoryProvider wires all repositories onto one pool.
func NewRepositoryProvider(pool PGXPool) *RepositoryProvider {
	return &RepositoryProvider{
		Deal: NewPgxDealRepository(pool),
	}
}
