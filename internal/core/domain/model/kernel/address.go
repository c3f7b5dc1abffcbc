package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"

	"escrow/internal/pkg/errs"
)

// AddressLength is the number of bytes in an account address.
const AddressLength = 20

// ErrAddressIsNotConstructed indicates a zero-value Address that was not created
// through AddressFromString or AddressFromBytes.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via AddressFromString or AddressFromBytes",
)

// Address is the identity of a party on the ledger: the platform owner, a
// customer, a delivery partner, or the escrow account itself. It is a 20-byte
// value rendered as 0x-prefixed lowercase hex.
//
// The zero value is invalid and is used to represent "no address"; every
// operation validates addresses before acting on them.
type Address struct {
	raw [AddressLength]byte
}

// AddressFromString parses a 0x-prefixed hex address. Case is ignored.
func AddressFromString(s string) (Address, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if len(trimmed) != AddressLength*2 {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("%q is not a %d-byte hex string", s, AddressLength))
	}

	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address", err)
	}

	return AddressFromBytes(b)
}

// AddressFromBytes creates an Address from exactly AddressLength bytes.
// The all-zero address is rejected.
func AddressFromBytes(b []byte) (Address, error) {
	if len(b) != AddressLength {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("%d bytes is not a valid address length", len(b)))
	}

	var a Address
	copy(a.raw[:], b)
	if err := a.Validate(); err != nil {
		return Address{}, err
	}

	return a, nil
}

// MustAddress parses an address and panics on failure. Intended for fixtures
// and configuration defaults that are known to be valid.
func MustAddress(s string) Address {
	a, err := AddressFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Validate reports whether the address was properly constructed.
// The zero address is invalid.
func (a Address) Validate() error {
	if a.raw == [AddressLength]byte{} {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// String renders the address as 0x-prefixed lowercase hex.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a.raw[:])
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a.raw[:])
	return b
}

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.raw == other.raw
}

// IsZero reports whether the address is the invalid zero value.
func (a Address) IsZero() bool {
	return a.raw == [AddressLength]byte{}
}
