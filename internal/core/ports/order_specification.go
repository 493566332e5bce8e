package ports

import (
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderSpecification is the composable search predicate over orders.
// Each optional field contributes one independent, commutative AND clause;
// an unset field imposes no constraint. The zero specification matches
// every order.
//
// The specification carries the predicate's meaning; storage adapters
// translate it to their query syntax, and Matches gives the reference
// in-memory semantics.
type OrderSpecification struct {
	orderID        *int
	documentNumber *string
	status         *order.Status
	createdOnFrom  *time.Time
	createdOnTo    *time.Time
}

// NewOrderSpecification creates a specification with no constraints.
func NewOrderSpecification() OrderSpecification {
	return OrderSpecification{}
}

// WithOrderID constrains the predicate to an exact order id.
func (s OrderSpecification) WithOrderID(id int) OrderSpecification {
	s.orderID = &id
	return s
}

// WithDocumentNumber constrains the predicate to an exact buyer document
// number. A blank value is ignored rather than matching empty.
func (s OrderSpecification) WithDocumentNumber(documentNumber string) OrderSpecification {
	if documentNumber == "" {
		return s
	}
	s.documentNumber = &documentNumber
	return s
}

// WithStatus constrains the predicate to an exact order status.
func (s OrderSpecification) WithStatus(status order.Status) OrderSpecification {
	s.status = &status
	return s
}

// WithCreatedOnFrom constrains the predicate to purchase dates at or after
// the given instant. The bound is normalized to UTC before comparison.
func (s OrderSpecification) WithCreatedOnFrom(from time.Time) OrderSpecification {
	utc := from.UTC()
	s.createdOnFrom = &utc
	return s
}

// WithCreatedOnTo constrains the predicate to purchase dates at or before
// the given instant. The bound is normalized to UTC before comparison.
func (s OrderSpecification) WithCreatedOnTo(to time.Time) OrderSpecification {
	utc := to.UTC()
	s.createdOnTo = &utc
	return s
}

// OrderID returns the order id constraint, or nil when unset.
func (s OrderSpecification) OrderID() *int {
	return s.orderID
}

// DocumentNumber returns the document number constraint, or nil when unset.
func (s OrderSpecification) DocumentNumber() *string {
	return s.documentNumber
}

// Status returns the status constraint, or nil when unset.
func (s OrderSpecification) Status() *order.Status {
	return s.status
}

// CreatedOnFrom returns the lower purchase date bound, or nil when unset.
func (s OrderSpecification) CreatedOnFrom() *time.Time {
	return s.createdOnFrom
}

// CreatedOnTo returns the upper purchase date bound, or nil when unset.
func (s OrderSpecification) CreatedOnTo() *time.Time {
	return s.createdOnTo
}

// Matches reports whether the order satisfies every set constraint.
func (s OrderSpecification) Matches(o *order.Order) bool {
	if s.orderID != nil && o.ID() != *s.orderID {
		return false
	}

	if s.documentNumber != nil && o.Buyer().DocumentNumber() != *s.documentNumber {
		return false
	}

	if s.status != nil && o.Status() != *s.status {
		return false
	}

	if s.createdOnFrom != nil && o.PurchaseDate().Before(*s.createdOnFrom) {
		return false
	}

	if s.createdOnTo != nil && o.PurchaseDate().After(*s.createdOnTo) {
		return false
	}

	return true
}
