package order

import (
	"fmt"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/errs"
)

func newAmountMismatchError(paid, owed kernel.Amount) error {
	return errs.NewValueIsInvalidErrorWithCause("amount",
		fmt.Errorf("payment of %s does not match order amount %s", paid, owed))
}

func newWindowExpiredError(operation string, deadline time.Time) error {
	return errs.NewRefundWindowExpiredError(operation, deadline.UTC().Format(time.RFC3339))
}

func newWindowStillOpenError(deadline time.Time) error {
	return errs.NewRefundWindowStillOpenError(deadline.UTC().Format(time.RFC3339))
}
