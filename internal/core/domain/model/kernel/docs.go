// Package kernel provides the shared value objects of the escrow domain:
// account addresses, 256-bit order identifiers, token amounts and business
// order numbers.
//
// All types are immutable value objects with validated constructors. Zero
// values are deliberately invalid so that uninitialized identifiers cannot
// slip into the order ledger: a zero order id or zero address always fails
// Validate and is rejected before any state is touched.
package kernel
