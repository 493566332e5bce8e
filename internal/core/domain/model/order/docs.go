// Package order provides domain entities and business logic for purchase
// order management. It implements the Order aggregate root with lifecycle
// management and event-driven state transitions.
//
// The package includes:
//   - Order: The aggregate root carrying buyer, line items, and status
//   - Buyer, Product: Immutable self-validating value objects
//   - Status: A state machine advanced only by applying lifecycle events
//   - Channel: The sales channel the order originated from
//
// Key business rules:
//   - An order's id is allocated once and must be positive
//   - The declared total must exactly equal the sum of line item subtotals
//   - The purchase date must be expressed in UTC; it is never converted
//   - Status transitions follow a fixed table; Canceled and Returned are terminal
//   - The status may only change through Order.Update, which applies one event
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
