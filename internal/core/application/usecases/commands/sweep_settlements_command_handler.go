package commands

import (
	"context"
	"errors"
	"time"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

var ErrNoSettleableOrders = errors.New("no settleable orders found")

// SweepSettlementsCommandHandler closes every delivered order whose refund
// window elapsed and credits the owner settlement balance with their amounts.
// The whole sweep commits as one transaction; a failure on any order rolls
// back the entire batch.
type SweepSettlementsCommandHandler struct {
	uowFactory   UoWFactory
	refundWindow time.Duration
	clk          clock.Clock
}

// NewSweepSettlementsCommandHandler creates a handler for the settlement
// sweep.
func NewSweepSettlementsCommandHandler(
	uowFactory UoWFactory,
	refundWindow time.Duration,
	clk clock.Clock,
) SweepSettlementsCommandHandler {
	return SweepSettlementsCommandHandler{
		uowFactory:   uowFactory,
		refundWindow: refundWindow,
		clk:          clk,
	}
}

// Handle finds delivered orders past their refund window, closes each one,
// and credits the settlement balance once with the combined total. Returns
// ErrNoSettleableOrders when nothing is eligible.
func (h SweepSettlementsCommandHandler) Handle(ctx context.Context, cmd SweepSettlementsCommand) error {
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

	now := h.clk.Now()
	cutoff := now.Add(-h.refundWindow)

	orders, err := uow.OrderRepository().GetDeliveredBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoSettleableOrders
	}

	reg, err := loadRegistry(ctx, uow)
	if err != nil {
		return err
	}

	balance, err := uow.SettlementRepository().Get(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if err := o.Close(now, h.refundWindow); err != nil {
			return err
		}
		if err := balance.Credit(o.Amount()); err != nil {
			return err
		}
		if err := uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}

		event := order.NewEvent(order.EventOrderClosed, o, reg.Owner(), now)
		if err := uow.EventRepository().Append(ctx, event); err != nil {
			return err
		}
	}

	if err := uow.SettlementRepository().Save(ctx, balance); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
