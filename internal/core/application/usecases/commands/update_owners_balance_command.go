package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrUpdateOwnersBalanceCommandIsNotConstructed = errors.New(
	"UpdateOwnersBalanceCommand must be created via NewUpdateOwnersBalanceCommand constructor",
)

// UpdateOwnersBalanceCommand represents the owner settling one order whose
// refund window elapsed unreturned: the escrowed amount is credited to the
// owner settlement balance and the order is closed.
type UpdateOwnersBalanceCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Address
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewUpdateOwnersBalanceCommand validates and creates the command.
func NewUpdateOwnersBalanceCommand(caller kernel.Address, number kernel.OrderNumber) (UpdateOwnersBalanceCommand, error) {
	cmd := UpdateOwnersBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setNumber(number),
	); err != nil {
		return UpdateOwnersBalanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOwnersBalanceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOwnersBalanceCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c UpdateOwnersBalanceCommand) Caller() kernel.Address {
	return c.caller
}

// Number returns the business reference of the order to settle.
func (c UpdateOwnersBalanceCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c *UpdateOwnersBalanceCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateOwnersBalanceCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.number = number
	return nil
}
