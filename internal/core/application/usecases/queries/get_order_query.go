package queries

import "errors"

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery represents a request for one order's full projection,
// complete event history included.
type GetOrderQuery struct {
	orderID int

	isConstructed bool
}

// NewGetOrderQuery creates a query for the order identified by orderID.
func NewGetOrderQuery(orderID int) GetOrderQuery {
	return GetOrderQuery{
		orderID:       orderID,
		isConstructed: true,
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetOrderQueryIsNotConstructed
	}
	return nil
}

// OrderID returns the id of the requested order.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}
