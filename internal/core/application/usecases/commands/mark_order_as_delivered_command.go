package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrMarkOrderAsDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderAsDeliveredCommand must be created via NewMarkOrderAsDeliveredCommand constructor",
)

// MarkOrderAsDeliveredCommand represents a delivery partner confirming that a
// shipped order reached the customer. Delivery starts the refund-window clock.
type MarkOrderAsDeliveredCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewMarkOrderAsDeliveredCommand validates and creates the command.
func NewMarkOrderAsDeliveredCommand(caller kernel.Address, orderID kernel.OrderID) (MarkOrderAsDeliveredCommand, error) {
	cmd := MarkOrderAsDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkOrderAsDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderAsDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderAsDeliveredCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c MarkOrderAsDeliveredCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the order being delivered.
func (c MarkOrderAsDeliveredCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *MarkOrderAsDeliveredCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *MarkOrderAsDeliveredCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
