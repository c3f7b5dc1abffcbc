package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrWithdrawOwnersBalanceCommandIsNotConstructed = errors.New(
	"WithdrawOwnersBalanceCommand must be created via NewWithdrawOwnersBalanceCommand constructor",
)

// WithdrawOwnersBalanceCommand represents the owner withdrawing the entire
// accumulated settlement balance from escrow custody.
type WithdrawOwnersBalanceCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Address

	guard guard.ConstructorGuard
}

// NewWithdrawOwnersBalanceCommand validates and creates the command.
func NewWithdrawOwnersBalanceCommand(caller kernel.Address) (WithdrawOwnersBalanceCommand, error) {
	cmd := WithdrawOwnersBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCaller(caller); err != nil {
		return WithdrawOwnersBalanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawOwnersBalanceCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawOwnersBalanceCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c WithdrawOwnersBalanceCommand) Caller() kernel.Address {
	return c.caller
}

func (c *WithdrawOwnersBalanceCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
