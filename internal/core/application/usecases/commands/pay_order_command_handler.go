package commands

import (
	"context"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

// PayOrderCommandHandler settles a customer's payment into escrow custody.
// Only the customer bound to the order may pay, the order must still be in
// Created status, and the amount must match exactly; over- and underpayment
// are rejected rather than partially credited.
type PayOrderCommandHandler struct {
	uowFactory    UoWFactory
	escrowAccount kernel.Address
	clk           clock.Clock
}

// NewPayOrderCommandHandler creates a handler for order payments.
// escrowAccount is the custody account payments are pulled into.
func NewPayOrderCommandHandler(uowFactory UoWFactory, escrowAccount kernel.Address, clk clock.Clock) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory:    uowFactory,
		escrowAccount: escrowAccount,
		clk:           clk,
	}
}

// Handle marks the order Paid and pulls the amount from the customer through
// the token gateway. The status write is staged before the transfer (the
// transfer credits escrow custody), and both commit atomically; a failed
// transfer rolls everything back.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := requireCustomer(o, cmd.Caller()); err != nil {
		return err
	}

	now := h.clk.Now()
	if err := o.Pay(cmd.Amount(), now); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err := uow.TokenGateway().TransferFrom(ctx, cmd.Caller(), h.escrowAccount, cmd.Amount()); err != nil {
		return err
	}

	event := order.NewEvent(order.EventOrderPaid, o, cmd.Caller(), now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
