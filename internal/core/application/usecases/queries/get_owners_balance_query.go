package queries

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrGetOwnersBalanceQueryIsNotConstructed = errors.New(
	"GetOwnersBalanceQuery must be created via NewGetOwnersBalanceQuery constructor",
)

// GetOwnersBalanceQuery reads the accumulated owner settlement balance.
// Owner-only.
type GetOwnersBalanceQuery struct { //nolint:recvcheck //using for validation
	caller kernel.Address

	guard guard.ConstructorGuard
}

// NewGetOwnersBalanceQuery validates and creates the query.
func NewGetOwnersBalanceQuery(caller kernel.Address) (GetOwnersBalanceQuery, error) {
	q := GetOwnersBalanceQuery{guard: guard.NewConstructorGuard()}

	if err := q.setCaller(caller); err != nil {
		return GetOwnersBalanceQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnersBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnersBalanceQueryIsNotConstructed)
}

// Caller returns the address invoking the query.
func (q GetOwnersBalanceQuery) Caller() kernel.Address {
	return q.caller
}

func (q *GetOwnersBalanceQuery) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	q.caller = caller
	return nil
}
