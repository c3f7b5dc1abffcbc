package queries

import (
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/guard"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery retrieves the audit trail of one order. Owner-only.
type GetOrderEventsQuery struct { //nolint:recvcheck //using for validation
	caller  kernel.Address
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderEventsQuery validates and creates the query.
func NewGetOrderEventsQuery(caller kernel.Address, orderID kernel.OrderID) (GetOrderEventsQuery, error) {
	q := GetOrderEventsQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setCaller(caller),
		q.setOrderID(orderID),
	); err != nil {
		return GetOrderEventsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// Caller returns the address invoking the query.
func (q GetOrderEventsQuery) Caller() kernel.Address {
	return q.caller
}

// OrderID returns the order whose trail is being read.
func (q GetOrderEventsQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderEventsQuery) setCaller(caller kernel.Address) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	q.caller = caller
	return nil
}

func (q *GetOrderEventsQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// GetOrderEventsQueryResponse is one audit trail entry.
type GetOrderEventsQueryResponse struct {
	Name       order.EventName
	Actor      kernel.Address
	Status     order.Status
	Amount     kernel.Amount
	OccurredAt time.Time
}
