package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrMarkOrderAsReturnedCommandIsNotConstructed = errors.New(
	"MarkOrderAsReturnedCommand must be created via NewMarkOrderAsReturnedCommand constructor",
)

// MarkOrderAsReturnedCommand represents a delivery partner accepting a return
// of a delivered order within the refund window.
type MarkOrderAsReturnedCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewMarkOrderAsReturnedCommand validates and creates the command.
func NewMarkOrderAsReturnedCommand(caller kernel.Address, orderID kernel.OrderID) (MarkOrderAsReturnedCommand, error) {
	cmd := MarkOrderAsReturnedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkOrderAsReturnedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderAsReturnedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderAsReturnedCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c MarkOrderAsReturnedCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the order being returned.
func (c MarkOrderAsReturnedCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *MarkOrderAsReturnedCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *MarkOrderAsReturnedCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
