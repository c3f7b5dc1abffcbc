package commands

import (
	"context"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/core/domain/model/registry"
	"escrow/internal/pkg/errs"
)

// Role guards. Evaluated before any other precondition so that a rejected
// caller never observes order state, and evaluated inside the unit of work so
// a failure rolls back without a trace.

func loadRegistry(ctx context.Context, uow UoW) (*registry.RoleRegistry, error) {
	return uow.RegistryRepository().Get(ctx)
}

func requireOwner(reg *registry.RoleRegistry, caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if !reg.IsOwner(caller) {
		return errs.NewNotAuthorizedError("owner", caller.String())
	}
	return nil
}

func requirePartner(reg *registry.RoleRegistry, caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if !reg.IsPartner(caller) {
		return errs.NewNotAuthorizedError("delivery partner", caller.String())
	}
	return nil
}

// requireCustomer checks the order-customer binding. Unlike the role guards it
// runs after existence, since the binding lives on the order itself.
func requireCustomer(o *order.Order, caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if !o.IsBoundTo(caller) {
		return errs.NewNotAuthorizedError("order customer", caller.String())
	}
	return nil
}
