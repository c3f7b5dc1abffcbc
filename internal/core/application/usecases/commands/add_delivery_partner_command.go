package commands

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrAddDeliveryPartnerCommandIsNotConstructed = errors.New(
	"AddDeliveryPartnerCommand must be created via NewAddDeliveryPartnerCommand constructor",
)

// AddDeliveryPartnerCommand represents the owner's request to grant the
// delivery partner role to an address.
type AddDeliveryPartnerCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	partner kernel.Address

	guard guard.ConstructorGuard
}

// NewAddDeliveryPartnerCommand validates and creates the command.
func NewAddDeliveryPartnerCommand(caller, partner kernel.Address) (AddDeliveryPartnerCommand, error) {
	cmd := AddDeliveryPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setPartner(partner),
	); err != nil {
		return AddDeliveryPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDeliveryPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAddDeliveryPartnerCommandIsNotConstructed)
}

// Caller returns the address invoking the operation.
func (c AddDeliveryPartnerCommand) Caller() kernel.Address {
	return c.caller
}

// Partner returns the address being granted the delivery partner role.
func (c AddDeliveryPartnerCommand) Partner() kernel.Address {
	return c.partner
}

func (c *AddDeliveryPartnerCommand) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddDeliveryPartnerCommand) setPartner(partner kernel.Address) error {
	if err := partner.Validate(); err != nil {
		return err
	}
	c.partner = partner
	return nil
}
