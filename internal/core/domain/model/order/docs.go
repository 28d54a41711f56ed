// Package order provides domain entities and business logic for delivery order
// management in the driver application. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are assigned to exactly one driver at creation; the assignment never changes
//   - Order status follows a strict forward chain:
//     Confirmed -> Accepted -> OnWay -> Reached -> Delivered
//   - Any non-terminal order may be cancelled with a reason
//   - Delivered and Cancelled are terminal; no transitions lead out of them
//   - Completing a delivery requires a delivery method and a photo-proof reference
//   - Re-submitting the current status is an idempotent no-op
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
