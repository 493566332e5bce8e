// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers read
// through the repository ports and shape results into response views,
// never mutating state.
package queries

import (
	"time"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse is the outward projection of an order, with the events
// attached by the query that produced it: the full history for a single
// order lookup, at most the most recent event for a search.
type OrderResponse struct {
	OrderID             int
	ExternalReferenceID string
	Channel             order.Channel
	PurchaseDate        time.Time
	TotalValue          decimal.Decimal
	Buyer               BuyerResponse
	Products            []ProductResponse
	Status              order.Status
	UpdatedOn           time.Time
	Events              []EventResponse
}

// BuyerResponse is the outward projection of an order's buyer.
type BuyerResponse struct {
	FirstName      string
	LastName       string
	DocumentNumber string
	Phone          string
}

// ProductResponse is the outward projection of one line item.
type ProductResponse struct {
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// EventResponse is the outward projection of a recorded lifecycle event.
type EventResponse struct {
	ID   string
	Type event.Type
	Date time.Time
	User *string
}

// orderResponseFrom projects an order aggregate with an empty event list.
func orderResponseFrom(o *order.Order) OrderResponse {
	products := make([]ProductResponse, 0, len(o.Products()))
	for _, p := range o.Products() {
		products = append(products, ProductResponse{
			SKU:         p.SKU(),
			Name:        p.Name(),
			Description: p.Description(),
			Price:       p.Price(),
			Quantity:    p.Quantity(),
		})
	}

	return OrderResponse{
		OrderID:             o.ID(),
		ExternalReferenceID: o.ExternalReferenceID(),
		Channel:             o.Channel(),
		PurchaseDate:        o.PurchaseDate(),
		TotalValue:          o.TotalValue(),
		Buyer: BuyerResponse{
			FirstName:      o.Buyer().FirstName(),
			LastName:       o.Buyer().LastName(),
			DocumentNumber: o.Buyer().DocumentNumber(),
			Phone:          o.Buyer().Phone(),
		},
		Products:  products,
		Status:    o.Status(),
		UpdatedOn: o.UpdatedOn(),
		Events:    []EventResponse{},
	}
}

// eventResponseFrom projects a recorded event.
func eventResponseFrom(e *event.Event) EventResponse {
	return EventResponse{
		ID:   e.ID(),
		Type: e.Type(),
		Date: e.Date(),
		User: e.User(),
	}
}
