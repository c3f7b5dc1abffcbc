package order

import (
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the escrow ledger: a single purchase tracked
// from creation through payment, shipment, delivery and either refund or
// owner settlement.
//
// Order maintains these invariants:
//   - Identifier, order number, customer address and amount are immutable
//     after creation and always valid.
//   - The amount is strictly positive and must be paid exactly, in full,
//     in a single payment.
//   - Status only moves along the transitions defined by Status.
//   - Each lifecycle timestamp is set exactly once, at its transition,
//     and is zero before it.
//
// All mutating methods validate their preconditions and leave the order
// untouched when they fail: a rejected call never observes partial state.
type Order struct {
	id       kernel.OrderID
	number   kernel.OrderNumber
	customer kernel.Address
	amount   kernel.Amount
	status   Status

	createdAt   time.Time
	paidAt      time.Time
	shippedAt   time.Time
	deliveredAt time.Time
	returnedAt  time.Time
	refundedAt  time.Time
	closedAt    time.Time

	isConstructed bool
}

// NewOrder creates an Order in Created status. All parameters are validated;
// a validation failure on any of them is reported and no order is produced.
func NewOrder(
	id kernel.OrderID,
	number kernel.OrderNumber,
	customer kernel.Address,
	amount kernel.Amount,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and lifecycle timestamps. Used only by repository adapters.
func RestoreOrder(
	id kernel.OrderID,
	number kernel.OrderNumber,
	customer kernel.Address,
	amount kernel.Amount,
	status Status,
	createdAt, paidAt, shippedAt, deliveredAt, returnedAt, refundedAt, closedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, number, customer, amount, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.paidAt = paidAt
	o.shippedAt = shippedAt
	o.deliveredAt = deliveredAt
	o.returnedAt = returnedAt
	o.refundedAt = refundedAt
	o.closedAt = closedAt
	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Number returns the externally supplied business reference.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// Customer returns the address bound to the order at creation. Only this
// identity may pay or request a refund.
func (o *Order) Customer() kernel.Address {
	return o.customer
}

// Amount returns the token quantity owed for the order.
func (o *Order) Amount() kernel.Amount {
	return o.amount
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// IsOpen reports whether the order has not reached a terminal state.
// Order numbers are unique among open orders only.
func (o *Order) IsOpen() bool {
	return !o.status.IsTerminal()
}

// IsBoundTo reports whether addr is the order's customer.
func (o *Order) IsBoundTo(addr kernel.Address) bool {
	return o.customer.IsEqual(addr)
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// PaidAt returns the payment timestamp, zero if unpaid.
func (o *Order) PaidAt() time.Time { return o.paidAt }

// ShippedAt returns the shipment timestamp, zero if unshipped.
func (o *Order) ShippedAt() time.Time { return o.shippedAt }

// DeliveredAt returns the delivery timestamp, zero if undelivered.
// This is the anchor for the refund-window clock.
func (o *Order) DeliveredAt() time.Time { return o.deliveredAt }

// ReturnedAt returns the return timestamp, zero if not returned.
func (o *Order) ReturnedAt() time.Time { return o.returnedAt }

// RefundedAt returns the refund timestamp, zero if not refunded.
func (o *Order) RefundedAt() time.Time { return o.refundedAt }

// ClosedAt returns the owner-settlement timestamp, zero if not closed.
func (o *Order) ClosedAt() time.Time { return o.closedAt }

// RefundDeadline returns the last instant at which a return or refund is
// still permitted, and false if the order has not been delivered yet.
func (o *Order) RefundDeadline(window time.Duration) (time.Time, bool) {
	if o.deliveredAt.IsZero() {
		return time.Time{}, false
	}
	return o.deliveredAt.Add(window), true
}

// Pay transitions the order to Paid. The payment must match the order amount
// exactly; over- and underpayment are both rejected with no state change.
// State is checked before the value, so paying an already-paid order reports
// a state error even if the amount is also wrong.
func (o *Order) Pay(amount kernel.Amount, at time.Time) error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	if err := amount.Validate(); err != nil {
		return err
	}
	if amount != o.amount {
		return newAmountMismatchError(amount, o.amount)
	}

	o.status = newStatus
	o.paidAt = at.UTC()
	return nil
}

// Ship transitions the order to Shipped.
func (o *Order) Ship(at time.Time) error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.shippedAt = at.UTC()
	return nil
}

// Deliver transitions the order to Delivered and starts the refund-window
// clock.
func (o *Order) Deliver(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = at.UTC()
	return nil
}

// Return transitions the order to Returned. Permitted up to and including
// deliveredAt + window; one second past the boundary is rejected.
func (o *Order) Return(at time.Time, window time.Duration) error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	if err := o.checkWindowOpen("return", at, window); err != nil {
		return err
	}

	o.status = newStatus
	o.returnedAt = at.UTC()
	return nil
}

// Refund transitions the order to Refunded, from Paid (never handed over) or
// Returned. When the order has been delivered the refund window still applies.
func (o *Order) Refund(at time.Time, window time.Duration) error {
	newStatus, err := o.status.Refund()
	if err != nil {
		return err
	}

	if !o.deliveredAt.IsZero() {
		if err := o.checkWindowOpen("refund", at, window); err != nil {
			return err
		}
	}

	o.status = newStatus
	o.refundedAt = at.UTC()
	return nil
}

// Close transitions the order to Closed for owner settlement. Only permitted
// once the refund window has fully elapsed since delivery.
func (o *Order) Close(at time.Time, window time.Duration) error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	deadline := o.deliveredAt.Add(window)
	if !at.UTC().After(deadline) {
		return newWindowStillOpenError(deadline)
	}

	o.status = newStatus
	o.closedAt = at.UTC()
	return nil
}

// checkWindowOpen enforces the inclusive refund-window boundary: exactly at
// deliveredAt + window is allowed, anything later is expired.
func (o *Order) checkWindowOpen(operation string, at time.Time, window time.Duration) error {
	deadline := o.deliveredAt.Add(window)
	if at.UTC().After(deadline) {
		return newWindowExpiredError(operation, deadline)
	}
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer kernel.Address) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setAmount(amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.amount = amount
	return nil
}
