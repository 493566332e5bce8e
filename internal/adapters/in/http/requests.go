package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the wire shape of an order creation call.
type CreateOrderRequest struct {
	ExternalReferenceID string               `json:"externalReferenceId"`
	Channel             string               `json:"channel"`
	PurchaseDate        time.Time            `json:"purchaseDate"`
	TotalValue          decimal.Decimal      `json:"totalValue"`
	Buyer               CreateOrderBuyer     `json:"buyer"`
	Products            []CreateOrderProduct `json:"products"`
}

// CreateOrderBuyer carries the buyer fields of a creation request.
type CreateOrderBuyer struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone"`
}

// CreateOrderProduct carries one requested line item.
type CreateOrderProduct struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// RegisterEventRequest is the wire shape of an event registration call.
// The order id rides on the path.
type RegisterEventRequest struct {
	ID   string    `json:"id"`
	Type string    `json:"type"`
	Date time.Time `json:"date"`
	User *string   `json:"user,omitempty"`
}
