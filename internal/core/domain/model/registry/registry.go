// Package registry provides the role registry of the escrow ledger (the
// platform owner and the delivery-partner set) and the owner settlement
// balance accumulated from orders that went unreturned past the refund window.
package registry

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
)

// ErrRegistryIsNotConstructed is returned when a RoleRegistry was not created
// via NewRoleRegistry.
var ErrRegistryIsNotConstructed = errors.New("RoleRegistry must be created via NewRoleRegistry constructor")

// RoleRegistry holds the privileged owner address and the set of registered
// delivery partners. The owner is fixed at construction; partners can only be
// added, never removed.
type RoleRegistry struct {
	owner    kernel.Address
	partners map[kernel.Address]struct{}

	isConstructed bool
}

// NewRoleRegistry creates a registry with the given owner and no partners.
func NewRoleRegistry(owner kernel.Address) (*RoleRegistry, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	return &RoleRegistry{
		owner:         owner,
		partners:      make(map[kernel.Address]struct{}),
		isConstructed: true,
	}, nil
}

// RestoreRoleRegistry reconstructs a registry from persistence.
func RestoreRoleRegistry(owner kernel.Address, partners []kernel.Address) (*RoleRegistry, error) {
	r, err := NewRoleRegistry(owner)
	if err != nil {
		return nil, err
	}

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		r.partners[p] = struct{}{}
	}

	return r, nil
}

// Validate ensures the registry was constructed through NewRoleRegistry.
func (r *RoleRegistry) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRegistryIsNotConstructed
	}
	return nil
}

// Owner returns the privileged owner address.
func (r *RoleRegistry) Owner() kernel.Address {
	return r.owner
}

// IsOwner reports whether addr is the owner.
func (r *RoleRegistry) IsOwner(addr kernel.Address) bool {
	return r.owner.IsEqual(addr)
}

// AddPartner registers addr as a delivery partner. Adding an existing partner
// is a no-op.
func (r *RoleRegistry) AddPartner(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}

	r.partners[addr] = struct{}{}
	return nil
}

// IsPartner reports whether addr is a registered delivery partner.
func (r *RoleRegistry) IsPartner(addr kernel.Address) bool {
	_, ok := r.partners[addr]
	return ok
}

// Partners returns the registered delivery partners in no particular order.
func (r *RoleRegistry) Partners() []kernel.Address {
	out := make([]kernel.Address, 0, len(r.partners))
	for p := range r.partners {
		out = append(out, p)
	}
	return out
}
