package kernel

import (
	"fmt"

	"escrow/internal/pkg/errs"
)

// Amount is a token quantity in the token's smallest unit. Amounts attached to
// orders and transfers are always strictly positive; zero is only meaningful
// for balances.
type Amount int64

// NewAmount validates that the quantity is strictly positive.
func NewAmount(value int64) (Amount, error) {
	a := Amount(value)
	if err := a.Validate(); err != nil {
		return 0, err
	}
	return a, nil
}

// Validate rejects zero and negative amounts.
func (a Amount) Validate() error {
	if a <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", int64(a)))
	}
	return nil
}

// Int64 returns the raw value.
func (a Amount) Int64() int64 {
	return int64(a)
}

func (a Amount) String() string {
	return fmt.Sprintf("%d", int64(a))
}
