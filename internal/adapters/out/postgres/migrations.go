package postgres

import (
	"escrow/internal/adapters/out/postgres/eventrepo"
	"escrow/internal/adapters/out/postgres/orderrepo"
	"escrow/internal/adapters/out/postgres/registryrepo"
	"escrow/internal/adapters/out/postgres/settlementrepo"
	"escrow/internal/adapters/out/postgres/tokenrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the escrow ledger persists to.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&registryrepo.RoleRegistryDTO{},
		&registryrepo.DeliveryPartnerDTO{},
		&settlementrepo.SettlementBalanceDTO{},
		&eventrepo.OrderEventDTO{},
		&tokenrepo.TokenAccountDTO{},
		&tokenrepo.TokenAllowanceDTO{},
	)
}
