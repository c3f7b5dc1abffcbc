package commands

import (
	"context"
	"time"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

// UpdateOwnersBalanceCommandHandler finalizes a delivered order whose refund
// window elapsed without a return: the order closes and its amount is
// credited to the owner settlement balance. No tokens move here; funds stay
// in escrow custody until the owner withdraws.
type UpdateOwnersBalanceCommandHandler struct {
	uowFactory   UoWFactory
	refundWindow time.Duration
	clk          clock.Clock
}

// NewUpdateOwnersBalanceCommandHandler creates a handler for owner settlement.
func NewUpdateOwnersBalanceCommandHandler(
	uowFactory UoWFactory,
	refundWindow time.Duration,
	clk clock.Clock,
) UpdateOwnersBalanceCommandHandler {
	return UpdateOwnersBalanceCommandHandler{
		uowFactory:   uowFactory,
		refundWindow: refundWindow,
		clk:          clk,
	}
}

// Handle closes the order and credits the settlement balance in one
// transaction, recording the OrderClosed event.
func (h UpdateOwnersBalanceCommandHandler) Handle(ctx context.Context, cmd UpdateOwnersBalanceCommand) error {
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
	if err := requireOwner(reg, cmd.Caller()); err != nil {
		return err
	}

	o, err := uow.OrderRepository().GetOpenByNumber(ctx, cmd.Number())
	if err != nil {
		return err
	}

	now := h.clk.Now()
	if err := o.Close(now, h.refundWindow); err != nil {
		return err
	}

	balance, err := uow.SettlementRepository().Get(ctx)
	if err != nil {
		return err
	}
	if err := balance.Credit(o.Amount()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err := uow.SettlementRepository().Save(ctx, balance); err != nil {
		return err
	}

	event := order.NewEvent(order.EventOrderClosed, o, cmd.Caller(), now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
