package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// GetByID retrieves an order by its numeric identifier.
	// Returns errs.ObjectNotFoundError when no order has that id.
	GetByID(ctx context.Context, id int) (*order.Order, error)

	// GetBySpecification retrieves every order matching the specification.
	// An empty specification matches all orders.
	GetBySpecification(ctx context.Context, spec OrderSpecification) ([]*order.Order, error)

	// Add persists a new order aggregate.
	// Returns errs.ConflictError when an order with the same external
	// reference id and channel already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the persisted order keyed by its id. The replace is
	// unconditional: concurrent updates resolve to last writer wins.
	Update(ctx context.Context, aggregate *order.Order) error
}
