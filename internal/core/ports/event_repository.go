package ports

import (
	"context"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
)

// EventRepository persists the audit trail of committed state transitions.
// Events are append-only and written in the same transaction as the state
// change they describe, so an aborted operation never leaves an event behind.
type EventRepository interface {
	// Append stores one event.
	Append(ctx context.Context, event order.Event) error

	// ListByOrderID retrieves all events recorded for one order, oldest first.
	ListByOrderID(ctx context.Context, id kernel.OrderID) ([]order.Event, error)
}
