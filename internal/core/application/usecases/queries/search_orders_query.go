package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

// SearchOrdersQuery represents a filtered order search. Every filter is
// optional; an omitted filter imposes no constraint, so the empty query
// matches all orders.
type SearchOrdersQuery struct {
	orderID        *int
	documentNumber *string
	status         *order.Status
	createdOnFrom  *time.Time
	createdOnTo    *time.Time

	isConstructed bool
}

// NewSearchOrdersQuery creates a search query with no filters.
func NewSearchOrdersQuery() SearchOrdersQuery {
	return SearchOrdersQuery{isConstructed: true}
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	if !q.isConstructed {
		return ErrSearchOrdersQueryIsNotConstructed
	}
	return nil
}

// WithOrderID filters by exact order id.
func (q SearchOrdersQuery) WithOrderID(id int) SearchOrdersQuery {
	q.orderID = &id
	return q
}

// WithDocumentNumber filters by exact buyer document number.
func (q SearchOrdersQuery) WithDocumentNumber(documentNumber string) SearchOrdersQuery {
	q.documentNumber = &documentNumber
	return q
}

// WithStatus filters by exact order status.
func (q SearchOrdersQuery) WithStatus(status order.Status) SearchOrdersQuery {
	q.status = &status
	return q
}

// WithCreatedOnFrom filters to purchase dates at or after the given instant.
func (q SearchOrdersQuery) WithCreatedOnFrom(from time.Time) SearchOrdersQuery {
	q.createdOnFrom = &from
	return q
}

// WithCreatedOnTo filters to purchase dates at or before the given instant.
func (q SearchOrdersQuery) WithCreatedOnTo(to time.Time) SearchOrdersQuery {
	q.createdOnTo = &to
	return q
}

// Specification translates the query's filters into the repository
// search predicate.
func (q SearchOrdersQuery) Specification() ports.OrderSpecification {
	spec := ports.NewOrderSpecification()

	if q.orderID != nil {
		spec = spec.WithOrderID(*q.orderID)
	}
	if q.documentNumber != nil {
		spec = spec.WithDocumentNumber(*q.documentNumber)
	}
	if q.status != nil {
		spec = spec.WithStatus(*q.status)
	}
	if q.createdOnFrom != nil {
		spec = spec.WithCreatedOnFrom(*q.createdOnFrom)
	}
	if q.createdOnTo != nil {
		spec = spec.WithCreatedOnTo(*q.createdOnTo)
	}

	return spec
}
