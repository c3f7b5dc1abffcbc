package commands

import (
	"context"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

// MarkOrderAsShippedCommandHandler advances a paid order to Shipped.
// Any registered delivery partner may ship; customers and the owner may not
// unless they are also registered as partners.
type MarkOrderAsShippedCommandHandler struct {
	uowFactory UoWFactory
	clk        clock.Clock
}

// NewMarkOrderAsShippedCommandHandler creates a handler for shipment marking.
func NewMarkOrderAsShippedCommandHandler(uowFactory UoWFactory, clk clock.Clock) MarkOrderAsShippedCommandHandler {
	return MarkOrderAsShippedCommandHandler{
		uowFactory: uowFactory,
		clk:        clk,
	}
}

// Handle marks the order Shipped and records the OrderShipped event.
func (h MarkOrderAsShippedCommandHandler) Handle(ctx context.Context, cmd MarkOrderAsShippedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reg, err := loadRegistry(ctx, uow)
	if err != nil {
		return err
	}
	if err := requirePartner(reg, cmd.Caller()); err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := h.clk.Now()
	if err := o.Ship(now); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	event := order.NewEvent(order.EventOrderShipped, o, cmd.Caller(), now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
