package kernel

import (
	"strings"

	"escrow/internal/pkg/errs"
)

// OrderNumber is the externally supplied business reference for an order
// (e.g. a merchant order number such as "10000001"). It serves as the
// alternate lookup key for refund and settlement operations.
//
// An order number is only required to be unique among open orders; once an
// order reaches a terminal state the number may be reused by a new order.
type OrderNumber string

// NewOrderNumber validates and normalizes an order number.
func NewOrderNumber(value string) (OrderNumber, error) {
	n := OrderNumber(strings.TrimSpace(value))
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Validate rejects empty order numbers.
func (n OrderNumber) Validate() error {
	if n == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	return nil
}

func (n OrderNumber) String() string {
	return string(n)
}
