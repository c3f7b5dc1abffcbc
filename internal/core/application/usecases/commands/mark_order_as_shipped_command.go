package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrMarkOrderAsShippedCommandIsNotConstructed = errors.New(
	"MarkOrderAsShippedCommand must be created via NewMarkOrderAsShippedCommand constructor",
)

// MarkOrderAsShippedCommand represents a delivery partner dispatching a paid
// order.
type MarkOrderAsShippedCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewMarkOrderAsShippedCommand validates and creates the command.
func NewMarkOrderAsShippedCommand(caller kernel.Address, orderID kernel.OrderID) (MarkOrderAsShippedCommand, error) {
	cmd := MarkOrderAsShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkOrderAsShippedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderAsShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderAsShippedCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c MarkOrderAsShippedCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the order being shipped.
func (c MarkOrderAsShippedCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *MarkOrderAsShippedCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *MarkOrderAsShippedCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
