package commands

import (
	"context"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/core/domain/services"
	"escrow/internal/pkg/clock"
)

// CreateOrderCommandHandler opens new escrowed orders. Owner-only: the order
// ledger is operated by the platform, customers never create their own orders.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	idGen      *services.OrderIDGenerator
	clk        clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	idGen *services.OrderIDGenerator,
	clk clock.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		idGen:      idGen,
		clk:        clk,
	}
}

// Handle allocates a fresh order id, stores the order in Created status, and
// records the OrderCreated event. The repository rejects the insert when the
// order number is already bound to an open order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	now := h.clk.Now()
	newOrder, err := order.NewOrder(
		h.idGen.Generate(cmd.Caller(), now),
		cmd.Number(),
		cmd.Customer(),
		cmd.Amount(),
		now,
	)
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	event := order.NewEvent(order.EventOrderCreated, newOrder, cmd.Caller(), now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
