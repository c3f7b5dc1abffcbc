// Package errs provides standardized error types for the escrow service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the generic validation errors every layer needs
// (ValueIsRequiredError, ValueIsInvalidError, ObjectNotFoundError) plus the
// settlement-specific taxonomy the order ledger rejects operations with:
//   - NotAuthorizedError: caller lacks the owner/partner/customer role
//   - InvalidStateTransitionError: order exists but is in the wrong state
//   - RefundWindowExpiredError / RefundWindowStillOpenError: refund-window boundary
//   - OrderAlreadyFinalizedError: order already refunded or closed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is classification works
//
// Every rejection surfaced by the ledger maps to exactly one sentinel, which the
// HTTP layer relies on to pick response status codes.
package errs
