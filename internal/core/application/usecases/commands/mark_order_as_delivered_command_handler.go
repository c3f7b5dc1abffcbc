package commands

import (
	"context"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

// MarkOrderAsDeliveredCommandHandler advances a shipped order to Delivered
// and anchors the refund-window clock at the delivery timestamp.
type MarkOrderAsDeliveredCommandHandler struct {
	uowFactory UoWFactory
	clk        clock.Clock
}

// NewMarkOrderAsDeliveredCommandHandler creates a handler for delivery marking.
func NewMarkOrderAsDeliveredCommandHandler(uowFactory UoWFactory, clk clock.Clock) MarkOrderAsDeliveredCommandHandler {
	return MarkOrderAsDeliveredCommandHandler{
		uowFactory: uowFactory,
		clk:        clk,
	}
}

// Handle marks the order Delivered and records the OrderDelivered event.
func (h MarkOrderAsDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderAsDeliveredCommand) error {
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
	if err := o.Deliver(now); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	event := order.NewEvent(order.EventOrderDelivered, o, cmd.Caller(), now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
