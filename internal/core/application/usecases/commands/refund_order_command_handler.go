package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

// RefundOrderCommandHandler returns escrowed funds to the customer. Refunds
// are permitted from Paid (the order was never handed to a delivery partner)
// and from Returned; a delivered order must additionally still be within the
// refund window. A second refund of the same order number fails and never
// moves funds twice.
type RefundOrderCommandHandler struct {
	uowFactory   UoWFactory
	refundWindow time.Duration
	clk          clock.Clock
}

// NewRefundOrderCommandHandler creates a handler for customer refunds.
func NewRefundOrderCommandHandler(
	uowFactory UoWFactory,
	refundWindow time.Duration,
	clk clock.Clock,
) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory:   uowFactory,
		refundWindow: refundWindow,
		clk:          clk,
	}
}

// Handle marks the order Refunded and pushes the escrowed amount back to the
// customer. The order state is finalized before the outbound transfer is
// issued; both commit atomically, and a failed transfer rolls everything back.
func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
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

	o, err := uow.OrderRepository().GetOpenByNumber(ctx, cmd.Number())
	if err != nil {
		return err
	}

	if err := requireCustomer(o, cmd.Caller()); err != nil {
		return err
	}

	now := h.clk.Now()
	if err := o.Refund(now, h.refundWindow); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err := uow.TokenGateway().Transfer(ctx, o.Customer(), o.Amount()); err != nil {
		return err
	}

	event := order.NewEvent(order.EventOrderRefunded, o, cmd.Caller(), now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
