package commands

import (
	"context"

	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/clock"
)

// WithdrawOwnersBalanceCommandHandler transfers the full settlement balance
// from escrow custody to the owner and resets the balance to zero, atomically.
// A zero balance is rejected with ErrNothingToWithdraw.
type WithdrawOwnersBalanceCommandHandler struct {
	uowFactory UoWFactory
	clk        clock.Clock
}

// NewWithdrawOwnersBalanceCommandHandler creates a handler for owner
// withdrawal.
func NewWithdrawOwnersBalanceCommandHandler(uowFactory UoWFactory, clk clock.Clock) WithdrawOwnersBalanceCommandHandler {
	return WithdrawOwnersBalanceCommandHandler{
		uowFactory: uowFactory,
		clk:        clk,
	}
}

// Handle empties the settlement balance and pushes it to the owner through
// the token gateway. The balance reset is finalized before the outbound
// transfer; both commit atomically.
func (h WithdrawOwnersBalanceCommandHandler) Handle(ctx context.Context, cmd WithdrawOwnersBalanceCommand) error {
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

	balance, err := uow.SettlementRepository().Get(ctx)
	if err != nil {
		return err
	}

	amount, err := balance.Withdraw()
	if err != nil {
		return err
	}

	if err := uow.SettlementRepository().Save(ctx, balance); err != nil {
		return err
	}

	if err := uow.TokenGateway().Transfer(ctx, reg.Owner(), amount); err != nil {
		return err
	}

	now := h.clk.Now()
	event := order.NewWithdrawalEvent(reg.Owner(), amount, now)
	if err := uow.EventRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
