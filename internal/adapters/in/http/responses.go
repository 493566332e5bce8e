package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the wire shape of every failure: a list of
// human-readable messages.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

// CreateOrderResponse is the wire shape of a successful order creation.
type CreateOrderResponse struct {
	OrderID   int       `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedOn time.Time `json:"updatedOn"`
}

// RegisterEventResponse is the wire shape of a successful event
// registration that applied a transition.
type RegisterEventResponse struct {
	OrderID        int       `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	UpdatedOn      time.Time `json:"updatedOn"`
}

// OrderResponse is the wire projection of an order.
type OrderResponse struct {
	OrderID             int               `json:"orderId"`
	ExternalReferenceID string            `json:"externalReferenceId"`
	Channel             string            `json:"channel"`
	PurchaseDate        time.Time         `json:"purchaseDate"`
	TotalValue          decimal.Decimal   `json:"totalValue"`
	Buyer               BuyerResponse     `json:"buyer"`
	Products            []ProductResponse `json:"products"`
	Status              string            `json:"status"`
	UpdatedOn           time.Time         `json:"updatedOn"`
	Events              []EventResponse   `json:"events"`
}

// BuyerResponse is the wire projection of an order's buyer.
type BuyerResponse struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone"`
}

// ProductResponse is the wire projection of one line item.
type ProductResponse struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// EventResponse is the wire projection of a recorded event.
type EventResponse struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Date time.Time `json:"date"`
	User *string   `json:"user,omitempty"`
}

// orderResponseFrom maps a query projection to its wire shape.
func orderResponseFrom(view queries.OrderResponse) OrderResponse {
	products := make([]ProductResponse, 0, len(view.Products))
	for _, p := range view.Products {
		products = append(products, ProductResponse{
			SKU:         p.SKU,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Quantity:    p.Quantity,
		})
	}

	events := make([]EventResponse, 0, len(view.Events))
	for _, e := range view.Events {
		events = append(events, EventResponse{
			ID:   e.ID,
			Type: e.Type.String(),
			Date: e.Date,
			User: e.User,
		})
	}

	return OrderResponse{
		OrderID:             view.OrderID,
		ExternalReferenceID: view.ExternalReferenceID,
		Channel:             view.Channel.String(),
		PurchaseDate:        view.PurchaseDate,
		TotalValue:          view.TotalValue,
		Buyer: BuyerResponse{
			FirstName:      view.Buyer.FirstName,
			LastName:       view.Buyer.LastName,
			DocumentNumber: view.Buyer.DocumentNumber,
			Phone:          view.Buyer.Phone,
		},
		Products:  products,
		Status:    view.Status.String(),
		UpdatedOn: view.UpdatedOn,
		Events:    events,
	}
}
