package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

// MarkOrderAsReturnedCommandHandler accepts a return of a delivered order.
// The return must happen within the refund window measured from delivery;
// the boundary instant itself still succeeds, one second later fails.
type MarkOrderAsReturnedCommandHandler struct {
	uowFactory   UoWFactory
	refundWindow time.Duration
	clk          clock.Clock
}

// NewMarkOrderAsReturnedCommandHandler creates a handler for return acceptance.
func NewMarkOrderAsReturnedCommandHandler(
	uowFactory UoWFactory,
	refundWindow time.Duration,
	clk clock.Clock,
) MarkOrderAsReturnedCommandHandler {
	return MarkOrderAsReturnedCommandHandler{
		uowFactory:   uowFactory,
		refundWindow: refundWindow,
		clk:          clk,
	}
}

// Handle marks the order Returned and records the OrderReturned event.
func (h MarkOrderAsReturnedCommandHandler) Handle(ctx context.Context, cmd MarkOrderAsReturnedCommand) error {
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
	if err := o.Return(now, h.refundWindow); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	event := order.NewEvent(order.EventOrderReturned, o, cmd.Caller(), now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
