package queries

import (
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full state of one order by id. Owner-only: the
// read model exposes customer bindings and amounts, which are not public.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery validates and creates the query.
func NewGetOrderQuery(caller kernel.Address, orderID kernel.OrderID) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setCaller(caller),
		q.setOrderID(orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Caller returns the address invoking the query.
func (q GetOrderQuery) Caller() kernel.Address {
	return q.caller
}

// OrderID returns the order identifier being looked up.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderQuery) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	q.caller = caller
	return nil
}

func (q *GetOrderQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse is the full order read model. Lifecycle timestamps
// are nil until the corresponding transition happened.
type GetOrderQueryResponse struct {
	ID          kernel.OrderID
	Number      kernel.OrderNumber
	Customer    kernel.Address
	Amount      kernel.Amount
	Status      order.Status
	CreatedAt   time.Time
	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	ReturnedAt  *time.Time
	RefundedAt  *time.Time
	ClosedAt    *time.Time
}
