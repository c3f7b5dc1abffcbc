// Package postgres provides the GORM-based unit of work binding every
// repository and the token gateway of one ledger operation to a single
// database transaction. Either all state writes and token movements of an
// operation commit, or none do.
package postgres

import (
	"context"

	"escrow/internal/adapters/out/postgres/eventrepo"
	"escrow/internal/adapters/out/postgres/orderrepo"
	"escrow/internal/adapters/out/postgres/registryrepo"
	"escrow/internal/adapters/out/postgres/settlementrepo"
	"escrow/internal/adapters/out/postgres/tokenrepo"
	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection. Each business operation gets a fresh instance, isolated from
// concurrent operations.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	escrow kernel.Address
}

// NewGormUnitOfWorkFactory creates a factory. The escrow address is the
// custody account the token gateway draws on.
func NewGormUnitOfWorkFactory(db *gorm.DB, escrow kernel.Address) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, escrow: escrow}
}

// Create produces a new UnitOfWork ready for one operation.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, escrow: f.escrow}
}

// GormUnitOfWork coordinates one database transaction across the order,
// registry, settlement and event repositories plus the token gateway.
// Repositories obtained before Begin run on the bare connection; after Begin
// they are bound to the transaction.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	escrow kernel.Address
}

// Begin starts the transaction. Calling Begin twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes the transaction. Returns an error when no transaction is
// active or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. After a successful Commit it reports
// gorm.ErrInvalidTransaction, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns the order repository bound to the transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// RegistryRepository returns the role registry repository bound to the
// transaction.
func (uow *GormUnitOfWork) RegistryRepository() ports.RegistryRepository {
	return registryrepo.NewGormRegistryRepository(uow.conn())
}

// SettlementRepository returns the settlement balance repository bound to
// the transaction.
func (uow *GormUnitOfWork) SettlementRepository() ports.SettlementRepository {
	return settlementrepo.NewGormSettlementRepository(uow.conn())
}

// EventRepository returns the audit event repository bound to the
// transaction.
func (uow *GormUnitOfWork) EventRepository() ports.EventRepository {
	return eventrepo.NewGormEventRepository(uow.conn())
}

// TokenGateway returns the token gateway bound to the transaction.
func (uow *GormUnitOfWork) TokenGateway() ports.TokenGateway {
	return tokenrepo.NewGormTokenGateway(uow.conn(), uow.escrow)
}
