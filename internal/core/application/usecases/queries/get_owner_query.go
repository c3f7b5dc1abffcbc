package queries

import (
	"errors"

	"escrow/internal/pkg/guard"
)

var ErrGetOwnerQueryIsNotConstructed = errors.New(
	"GetOwnerQuery must be created via NewGetOwnerQuery constructor",
)

// GetOwnerQuery reads the registered platform owner address. Public.
type GetOwnerQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOwnerQuery creates the parameterless owner lookup.
func NewGetOwnerQuery() GetOwnerQuery {
	return GetOwnerQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerQueryIsNotConstructed)
}
