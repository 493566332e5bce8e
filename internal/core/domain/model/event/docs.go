// Package event provides the immutable entity recording lifecycle
// occurrences reported for orders.
//
// The package includes:
//   - Event: An immutable record tied to one order by its numeric id
//   - Type: The enumerated kind of occurrence (payment, cancellation, invoicing, return)
//
// Events carry an externally supplied id whose global uniqueness is
// enforced at the persistence boundary, not here: uniqueness must hold
// across all stored events, which no single in-memory instance can see.
package event
