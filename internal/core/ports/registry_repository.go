package ports

import (
	"context"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/registry"
)

// RegistryRepository persists the role registry: the owner address and the
// delivery-partner set.
type RegistryRepository interface {
	// EnsureOwner seeds the owner row if the registry is empty. The owner
	// address is fixed at deployment; a later call with a different address
	// does not overwrite it.
	EnsureOwner(ctx context.Context, owner kernel.Address) error

	// Get loads the full role registry.
	Get(ctx context.Context) (*registry.RoleRegistry, error)

	// AddPartner persists a delivery-partner registration. Adding an
	// existing partner is a no-op.
	AddPartner(ctx context.Context, partner kernel.Address) error
}

// SettlementRepository persists the single owner settlement balance.
type SettlementRepository interface {
	// Get loads the current balance, zero if nothing was ever credited.
	Get(ctx context.Context) (*registry.SettlementBalance, error)

	// Save persists the balance after a credit or withdrawal.
	Save(ctx context.Context, balance *registry.SettlementBalance) error
}
