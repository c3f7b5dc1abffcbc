package ports

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. Fails if the order number is already bound
	// to an open order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns errs.ErrObjectNotFound when the id resolves to nothing.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetOpenByNumber resolves an order number against open (non-terminal)
	// orders only; numbers of finalized orders are eligible for reuse.
	// Returns errs.ErrObjectNotFound when no open order carries the number.
	GetOpenByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAllOpen retrieves every order that has not reached a terminal state.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)

	// GetDeliveredBefore retrieves delivered orders whose delivery timestamp
	// is strictly before the cutoff. Used by the settlement sweep.
	GetDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
