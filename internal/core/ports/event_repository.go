package ports

import (
	"context"

	"orders/internal/core/domain/model/event"
)

// EventRepository defines the persistence contract for order lifecycle events.
type EventRepository interface {
	// GetAllByOrderID retrieves every event recorded for the order,
	// oldest first.
	GetAllByOrderID(ctx context.Context, orderID int) ([]*event.Event, error)

	// GetMostRecentByOrderID retrieves the single most recent event for the
	// order, by event date descending. Returns errs.ObjectNotFoundError when
	// the order has no events.
	GetMostRecentByOrderID(ctx context.Context, orderID int) (*event.Event, error)

	// Add persists a new event. Returns errs.ConflictError when an event
	// with the same externally supplied id already exists; this is the
	// signal the idempotent registration protocol relies on.
	Add(ctx context.Context, aggregate *event.Event) error
}
