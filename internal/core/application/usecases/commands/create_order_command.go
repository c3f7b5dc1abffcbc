package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents the owner's request to open a new escrowed
// order for a customer: the bound customer address, the token amount owed,
// and the external business reference.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Address
	customer kernel.Address
	amount   kernel.Amount
	number   kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates and creates the command. The caller must be
// supplied; whether it is the owner is decided by the handler.
func NewCreateOrderCommand(
	caller, customer kernel.Address,
	amount kernel.Amount,
	number kernel.OrderNumber,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setCustomer(customer),
		cmd.setAmount(amount),
		cmd.setNumber(number),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c CreateOrderCommand) Caller() kernel.Address {
	return c.caller
}

// Customer returns the address the new order will be bound to.
func (c CreateOrderCommand) Customer() kernel.Address {
	return c.customer
}

// Amount returns the token quantity owed for the order.
func (c CreateOrderCommand) Amount() kernel.Amount {
	return c.amount
}

// Number returns the external business reference.
func (c CreateOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

func (c *CreateOrderCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer kernel.Address) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setAmount(amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.number = number
	return nil
}
