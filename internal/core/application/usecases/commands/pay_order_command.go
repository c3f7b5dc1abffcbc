package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a customer paying the full amount of their order
// into escrow custody.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID kernel.OrderID
	amount  kernel.Amount

	guard guard.ConstructorGuard
}

// NewPayOrderCommand validates and creates the command.
func NewPayOrderCommand(caller kernel.Address, orderID kernel.OrderID, amount kernel.Amount) (PayOrderCommand, error) {
	cmd := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c PayOrderCommand) Caller() kernel.Address {
	return c.caller
}

// OrderID returns the order being paid.
func (c PayOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Amount returns the payment amount; it must equal the order amount exactly.
func (c PayOrderCommand) Amount() kernel.Amount {
	return c.amount
}

func (c *PayOrderCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *PayOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setAmount(amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	c.amount = amount
	return nil
}
