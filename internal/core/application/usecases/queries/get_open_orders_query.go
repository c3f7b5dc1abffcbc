package queries

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves every order that has not reached a terminal
// state. Owner-only operational visibility over in-flight escrow.
type GetOpenOrdersQuery struct { //nolint:recvcheck //using for validation
	caller kernel.Address

	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery validates and creates the query.
func NewGetOpenOrdersQuery(caller kernel.Address) (GetOpenOrdersQuery, error) {
	q := GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := q.setCaller(caller); err != nil {
		return GetOpenOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// Caller returns the address invoking the query.
func (q GetOpenOrdersQuery) Caller() kernel.Address {
	return q.caller
}

func (q *GetOpenOrdersQuery) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	q.caller = caller
	return nil
}
