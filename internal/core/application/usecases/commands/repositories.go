// Package commands contains the boundary operations that mutate ledger state.
// Each operation is a validated command value object plus a handler that
// evaluates guards in a fixed order (authorization, existence, state, value,
// window) before mutating anything inside a single unit of work.
package commands

import (
	"context"

	"escrow/internal/core/ports"
)

// Unit of Work interfaces provide the transaction boundary for command
// handlers. Every repository and the token gateway obtained from one UoW share
// a single transaction, which is what makes each operation all-or-nothing.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW exposes the transactional repositories and the token gateway.
	// The escrow ledger is one aggregate cluster, so a single unit of work
	// covers every operation.
	UoW interface {
		TxManager
		OrderRepository() ports.OrderRepository
		RegistryRepository() ports.RegistryRepository
		SettlementRepository() ports.SettlementRepository
		EventRepository() ports.EventRepository
		TokenGateway() ports.TokenGateway
	}

	// UoWFactory creates a fresh unit of work per command.
	UoWFactory interface {
		Create() UoW
	}
)
