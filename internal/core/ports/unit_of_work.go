package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per operation,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one ledger operation. All
// repositories and the token gateway obtained from it share one database
// transaction: either every state write and token transfer of the operation
// commits, or none do. This is what gives each boundary operation the
// whole-call atomicity the ledger guarantees.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Safe to defer after a commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns the order repository bound to the transaction.
	OrderRepository() OrderRepository

	// RegistryRepository returns the role registry repository bound to the
	// transaction.
	RegistryRepository() RegistryRepository

	// SettlementRepository returns the settlement balance repository bound
	// to the transaction.
	SettlementRepository() SettlementRepository

	// EventRepository returns the audit event repository bound to the
	// transaction.
	EventRepository() EventRepository

	// TokenGateway returns the token gateway bound to the transaction.
	TokenGateway() TokenGateway
}
