package queries

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrIsDeliveryPartnerQueryIsNotConstructed = errors.New(
	"IsDeliveryPartnerQuery must be created via NewIsDeliveryPartnerQuery constructor",
)

// IsDeliveryPartnerQuery checks whether an address holds the delivery partner
// role. Public: role membership carries no sensitive data.
type IsDeliveryPartnerQuery struct { //nolint:recvcheck //using for validation
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewIsDeliveryPartnerQuery validates and creates the query.
func NewIsDeliveryPartnerQuery(address kernel.Address) (IsDeliveryPartnerQuery, error) {
	q := IsDeliveryPartnerQuery{guard: guard.NewConstructorGuard()}

	if err := q.setAddress(address); err != nil {
		return IsDeliveryPartnerQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q IsDeliveryPartnerQuery) Validate() error {
	return q.guard.Validate(ErrIsDeliveryPartnerQueryIsNotConstructed)
}

// Address returns the address whose role membership is being checked.
func (q IsDeliveryPartnerQuery) Address() kernel.Address {
	return q.address
}

func (q *IsDeliveryPartnerQuery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	q.address = address
	return nil
}
