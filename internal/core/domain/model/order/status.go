package order

import (
	"fmt"

	"escrow/internal/pkg/errs"
)

// Status represents the lifecycle state of an escrowed order.
// It implements a state machine with defined transitions so orders can only
// move along the allowed settlement path.
//
// State transitions:
//
//	Created ──> Paid ──> Shipped ──> Delivered ──┬──> Returned ──> Refunded
//	              │                              │
//	              └──────────> Refunded          └──> Closed (owner sweep)
//
// Refunded and Closed are terminal. The numeric values are part of the
// persisted representation and of the event payloads; they must not change.
type Status int

const (
	// Created is the initial status: the order exists but has not been paid.
	Created Status = iota

	// Paid indicates the customer transferred the full order amount into
	// escrow custody.
	Paid

	// Shipped indicates a delivery partner dispatched the order.
	Shipped

	// Delivered indicates the order reached the customer. Delivery starts
	// the refund-window clock.
	Delivered

	// Returned indicates a delivery partner accepted a return within the
	// refund window.
	Returned

	// Refunded indicates the escrowed amount went back to the customer.
	// Terminal.
	Refunded

	// Closed indicates the refund window elapsed unreturned and the amount
	// was credited to the owner settlement balance. Terminal.
	Closed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Created:   "Created",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Returned:  "Returned",
		Refunded:  "Refunded",
		Closed:    "Closed",
	}
}

// Validate checks that the value is one of the defined statuses. Used when
// reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Refunded || s == Closed
}

// Pay transitions Created -> Paid.
func (s Status) Pay() (Status, error) {
	if s != Created {
		return 0, s.transitionError("pay")
	}
	return Paid, nil
}

// Ship transitions Paid -> Shipped.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, s.transitionError("ship")
	}
	return Shipped, nil
}

// Deliver transitions Shipped -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, s.transitionError("deliver")
	}
	return Delivered, nil
}

// Return transitions Delivered -> Returned. Returning an already returned or
// finalized order is reported as an already-finalized error rather than a
// plain state error, so callers can distinguish a duplicate request.
func (s Status) Return() (Status, error) {
	if s == Returned || s.IsTerminal() {
		return 0, errs.NewOrderAlreadyFinalizedError("return", s.String())
	}
	if s != Delivered {
		return 0, s.transitionError("return")
	}
	return Returned, nil
}

// Refund transitions Paid -> Refunded or Returned -> Refunded. A Paid order
// is refundable directly because it was never handed to a delivery partner.
func (s Status) Refund() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewOrderAlreadyFinalizedError("refund", s.String())
	}
	if s != Paid && s != Returned {
		return 0, s.transitionError("refund")
	}
	return Refunded, nil
}

// Close transitions Delivered -> Closed (owner settlement sweep).
func (s Status) Close() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewOrderAlreadyFinalizedError("close", s.String())
	}
	if s != Delivered {
		return 0, s.transitionError("close")
	}
	return Closed, nil
}

func (s Status) transitionError(operation string) error {
	return errs.NewInvalidStateTransitionError(operation, s.String())
}
