// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// domain construction, and persistence through the repository ports.
//
// There is deliberately no transaction spanning the orders and events
// collections: the event-then-order write sequence in RegisterEvent is a
// two-step, non-transactional protocol whose idempotency rests on the
// storage-level uniqueness of event ids.
package commands

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// BuyerData carries the raw buyer fields of a create order request.
// Validation happens when the domain Buyer is constructed.
type BuyerData struct {
	FirstName      string
	LastName       string
	DocumentNumber string
	Phone          string
}

// ProductData carries the raw fields of one requested line item.
// Validation happens when the domain Product is constructed.
type ProductData struct {
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// CreateOrderCommand represents a request to register a new purchase order.
//
// The command carries the request fields untouched: all domain validation
// runs inside the handler, in the aggregate's fixed order, so the first
// failing rule is the one reported.
type CreateOrderCommand struct {
	externalReferenceID string
	channel             order.Channel
	purchaseDate        time.Time
	totalValue          decimal.Decimal
	buyer               BuyerData
	products            []ProductData

	isConstructed bool
}

// NewCreateOrderCommand creates a command to register a new purchase order.
func NewCreateOrderCommand(
	externalReferenceID string,
	channel order.Channel,
	purchaseDate time.Time,
	totalValue decimal.Decimal,
	buyer BuyerData,
	products []ProductData,
) CreateOrderCommand {
	return CreateOrderCommand{
		externalReferenceID: externalReferenceID,
		channel:             channel,
		purchaseDate:        purchaseDate,
		totalValue:          totalValue,
		buyer:               buyer,
		products:            products,
		isConstructed:       true,
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	if !c.isConstructed {
		return ErrCreateOrderCommandIsNotConstructed
	}
	return nil
}

// ExternalReferenceID returns the caller-supplied order reference.
func (c CreateOrderCommand) ExternalReferenceID() string {
	return c.externalReferenceID
}

// Channel returns the sales channel the order originated from.
func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

// PurchaseDate returns the declared purchase instant.
func (c CreateOrderCommand) PurchaseDate() time.Time {
	return c.purchaseDate
}

// TotalValue returns the declared order total.
func (c CreateOrderCommand) TotalValue() decimal.Decimal {
	return c.totalValue
}

// Buyer returns the raw buyer fields.
func (c CreateOrderCommand) Buyer() BuyerData {
	return c.buyer
}

// Products returns the raw line item fields.
func (c CreateOrderCommand) Products() []ProductData {
	return c.products
}
