package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"

	"escrow/internal/pkg/errs"
)

// OrderIDLength is the number of bytes in an order identifier.
const OrderIDLength = 32

// ErrOrderIDIsNotConstructed indicates a zero-value OrderID that was not
// created through OrderIDFromString or OrderIDFromBytes.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via OrderIDFromString or OrderIDFromBytes",
)

// OrderID is the 256-bit identifier assigned to an order at creation. It is
// produced by the order-ID generator (a hash over creator address, nonce and
// timestamp) and is the sole primary lookup key for orders.
//
// The zero value is invalid; a zero order id is treated as "does not exist"
// rather than as a value error on an existing record.
type OrderID struct {
	raw [OrderIDLength]byte
}

// OrderIDFromString parses a 0x-prefixed hex order identifier.
func OrderIDFromString(s string) (OrderID, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if len(trimmed) != OrderIDLength*2 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q is not a %d-byte hex string", s, OrderIDLength))
	}

	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return OrderIDFromBytes(b)
}

// OrderIDFromBytes creates an OrderID from exactly OrderIDLength bytes.
// The all-zero identifier is rejected.
func OrderIDFromBytes(b []byte) (OrderID, error) {
	if len(b) != OrderIDLength {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d bytes is not a valid order id length", len(b)))
	}

	var id OrderID
	copy(id.raw[:], b)
	if err := id.Validate(); err != nil {
		return OrderID{}, err
	}

	return id, nil
}

// Validate reports whether the identifier was properly constructed.
func (id OrderID) Validate() error {
	if id.raw == [OrderIDLength]byte{} {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String renders the identifier as 0x-prefixed lowercase hex.
func (id OrderID) String() string {
	return "0x" + hex.EncodeToString(id.raw[:])
}

// Bytes returns a copy of the raw identifier bytes.
func (id OrderID) Bytes() []byte {
	b := make([]byte, OrderIDLength)
	copy(b, id.raw[:])
	return b
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.raw == other.raw
}
