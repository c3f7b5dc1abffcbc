package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand represents a customer requesting their escrowed payment
// back. The order is addressed by its business order number, the key the
// customer knows, rather than by the internal order id.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Address
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand validates and creates the command.
func NewRefundOrderCommand(caller kernel.Address, number kernel.OrderNumber) (RefundOrderCommand, error) {
	cmd := RefundOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setNumber(number),
	); err != nil {
		return RefundOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c RefundOrderCommand) Caller() kernel.Address {
	return c.caller
}

// Number returns the business reference of the order to refund.
func (c RefundOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c *RefundOrderCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RefundOrderCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.number = number
	return nil
}
