// Package order provides the central aggregate of the escrow ledger: the
// Order entity, its Status state machine, and the domain events emitted on
// each committed transition.
//
// Key business rules:
//   - Orders are bound to one customer and one fixed amount at creation
//   - Status follows Created -> Paid -> Shipped -> Delivered, terminating
//     either via Returned -> Refunded or via owner settlement (Closed)
//   - A Paid order may be refunded directly without ever being shipped
//   - Returns and refunds are only permitted within the refund window
//     measured from delivery; the boundary instant itself is still allowed
//   - Owner settlement is only permitted after the window has fully elapsed
//   - Every lifecycle timestamp is written exactly once
//
// All precondition checks happen before any mutation, so a rejected call
// leaves the order exactly as it was.
package order
