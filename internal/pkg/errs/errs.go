package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrNotAuthorized          = errors.New("caller is not authorized")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrRefundWindowExpired    = errors.New("refund window expired")
	ErrRefundWindowStillOpen  = errors.New("refund window still open")
	ErrOrderAlreadyFinalized  = errors.New("order already finalized")
	ErrNothingToWithdraw      = errors.New("nothing to withdraw")
)

// sanitize strips newlines from values interpolated into error messages
// so that a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that a lookup by identifier resolved to nothing.
// This is distinct from finding an object in the wrong state.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value lies outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value was absent.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// NotAuthorizedError indicates that the caller lacks the role an operation requires.
// Role names the required capability (owner, delivery partner, order customer).
type NotAuthorizedError struct {
	Role   string
	Caller string
	Cause  error
}

// NewNotAuthorizedError creates a NotAuthorizedError naming the required role and the caller.
func NewNotAuthorizedError(role, caller string) *NotAuthorizedError {
	return &NotAuthorizedError{Role: role, Caller: caller}
}

// NewNotAuthorizedErrorWithCause creates a NotAuthorizedError wrapping an underlying cause.
func NewNotAuthorizedErrorWithCause(role, caller string, cause error) *NotAuthorizedError {
	return &NotAuthorizedError{Role: role, Caller: caller, Cause: cause}
}

func (e *NotAuthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s required, caller is %s (cause: %s)",
			ErrNotAuthorized, e.Role, e.Caller, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s required, caller is %s", ErrNotAuthorized, e.Role, e.Caller))
}

func (e *NotAuthorizedError) Unwrap() error {
	return ErrNotAuthorized
}

// InvalidStateTransitionError indicates that an order exists but is not in the
// state the operation requires.
type InvalidStateTransitionError struct {
	Operation string
	Status    string
	Cause     error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for an
// operation attempted against an order in the given status.
func NewInvalidStateTransitionError(operation, status string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, Status: status}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError wrapping an underlying cause.
func NewInvalidStateTransitionErrorWithCause(operation, status string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, Status: status, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s an order in status %s (cause: %s)",
			ErrInvalidStateTransition, e.Operation, e.Status, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s an order in status %s",
		ErrInvalidStateTransition, e.Operation, e.Status))
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// RefundWindowExpiredError indicates that the refund window measured from
// delivery has elapsed for a return or refund operation.
type RefundWindowExpiredError struct {
	Operation string
	Deadline  string
}

// NewRefundWindowExpiredError creates a RefundWindowExpiredError for the given
// operation and formatted deadline.
func NewRefundWindowExpiredError(operation, deadline string) *RefundWindowExpiredError {
	return &RefundWindowExpiredError{Operation: operation, Deadline: deadline}
}

func (e *RefundWindowExpiredError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot %s after %s", ErrRefundWindowExpired, e.Operation, e.Deadline))
}

func (e *RefundWindowExpiredError) Unwrap() error {
	return ErrRefundWindowExpired
}

// RefundWindowStillOpenError indicates that owner settlement was attempted
// before the refund window elapsed.
type RefundWindowStillOpenError struct {
	Deadline string
}

// NewRefundWindowStillOpenError creates a RefundWindowStillOpenError with the
// formatted instant at which settlement becomes possible.
func NewRefundWindowStillOpenError(deadline string) *RefundWindowStillOpenError {
	return &RefundWindowStillOpenError{Deadline: deadline}
}

func (e *RefundWindowStillOpenError) Error() string {
	return sanitize(fmt.Sprintf("%s: order is settleable after %s", ErrRefundWindowStillOpen, e.Deadline))
}

func (e *RefundWindowStillOpenError) Unwrap() error {
	return ErrRefundWindowStillOpen
}

// OrderAlreadyFinalizedError indicates an attempt to act on an order that has
// already reached a terminal state (Refunded or Closed).
type OrderAlreadyFinalizedError struct {
	Operation string
	Status    string
}

// NewOrderAlreadyFinalizedError creates an OrderAlreadyFinalizedError for the
// given operation and terminal status.
func NewOrderAlreadyFinalizedError(operation, status string) *OrderAlreadyFinalizedError {
	return &OrderAlreadyFinalizedError{Operation: operation, Status: status}
}

func (e *OrderAlreadyFinalizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot %s an order in status %s", ErrOrderAlreadyFinalized, e.Operation, e.Status))
}

func (e *OrderAlreadyFinalizedError) Unwrap() error {
	return ErrOrderAlreadyFinalized
}
