package order

import (
	"errors"
	"strings"
	"time"

	"orders/internal/core/domain/model/event"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidID is returned when the allocated order id is not positive.
	ErrInvalidID = errs.NewValueIsInvalidErrorWithCause(
		"orderId", errors.New("Id must be a valid value."))

	// ErrBuyerEmpty is returned when the order has no buyer.
	ErrBuyerEmpty = errs.NewValueIsRequiredErrorWithCause(
		"buyer", errors.New("Buyer can not be null."))

	// ErrProductsEmpty is returned when the order has no products, or when the
	// product collection contains an entry that was never constructed.
	ErrProductsEmpty = errs.NewValueIsRequiredErrorWithCause(
		"products", errors.New("Products can not be null or empty."))

	// ErrExternalReferenceIDEmpty is returned when the external reference id is blank.
	ErrExternalReferenceIDEmpty = errs.NewValueIsRequiredErrorWithCause(
		"externalReferenceId", errors.New("ExternalReferenceId must contain a value."))

	// ErrPurchaseDateNotUTC is returned when the purchase date is not expressed
	// in UTC. The aggregate rejects instead of converting: normalization is the
	// caller's responsibility.
	ErrPurchaseDateNotUTC = errs.NewValueIsInvalidErrorWithCause(
		"purchaseDate", errors.New("PurchaseDate must be a UTC value."))

	// ErrTotalValueMismatch is returned when the declared total does not exactly
	// equal the sum of price times quantity over all products.
	ErrTotalValueMismatch = errs.NewValueIsInvalidErrorWithCause(
		"totalValue", errors.New("TotalValue does not match product's values."))

	// ErrEventOrderIDMismatch is returned when an event references a different order.
	ErrEventOrderIDMismatch = errs.NewValueIsInvalidErrorWithCause(
		"event", errors.New("Event order id does not match with order id."))

	// ErrNextStatusUnavailable is returned when the order's current status has no
	// legal outgoing transition, which covers the terminal statuses.
	ErrNextStatusUnavailable = errs.NewValueIsInvalidErrorWithCause(
		"status", errors.New("Order has no next status available."))

	// ErrInvalidEventType is returned when the event type is not allowed from the
	// order's current status.
	ErrInvalidEventType = errs.NewValueIsInvalidErrorWithCause(
		"event type", errors.New("Event type is invalid for the order status."))
)

// Order is the aggregate root representing a purchase. It owns the buyer
// and the product line items, and holds the lifecycle status that only the
// Update operation may advance.
//
// Order follows these invariants:
//   - Its id is assigned once, is positive, and globally unique
//   - The purchase date is expressed in UTC
//   - At creation the total equals the sum of price times quantity over products
//   - Status transitions follow the fixed transition table
//   - Can only be created through NewOrder or restored through RestoreOrder
type Order struct {
	id                  int
	externalReferenceID string
	channel             Channel
	purchaseDate        time.Time
	totalValue          decimal.Decimal
	buyer               Buyer
	products            []Product
	status              Status
	updatedOn           time.Time

	isConstructed bool
}

// NewOrder creates a new Order. Validation is sequential and the first
// failure is returned without accumulation:
//
//  1. id must be positive
//  2. buyer must be present
//  3. products must be non-empty with no unconstructed entries
//  4. externalReferenceID must be non-blank
//  5. purchaseDate must be expressed in UTC
//  6. totalValue must exactly equal the sum of price times quantity
//
// The total comparison is exact decimal equality with no tolerance.
// On success the order starts in Created status with updatedOn set to the
// current UTC instant.
func NewOrder(
	id int,
	externalReferenceID string,
	channel Channel,
	purchaseDate time.Time,
	totalValue decimal.Decimal,
	buyer Buyer,
	products []Product,
) (*Order, error) {
	if id < 1 {
		return nil, ErrInvalidID
	}

	if buyer.Validate() != nil {
		return nil, ErrBuyerEmpty
	}

	if len(products) == 0 {
		return nil, ErrProductsEmpty
	}
	for _, p := range products {
		if p.Validate() != nil {
			return nil, ErrProductsEmpty
		}
	}

	if strings.TrimSpace(externalReferenceID) == "" {
		return nil, ErrExternalReferenceIDEmpty
	}

	if purchaseDate.Location() != time.UTC {
		return nil, ErrPurchaseDateNotUTC
	}

	if !totalValue.Equal(productsTotal(products)) {
		return nil, ErrTotalValueMismatch
	}

	return &Order{
		id:                  id,
		externalReferenceID: externalReferenceID,
		channel:             channel,
		purchaseDate:        purchaseDate,
		totalValue:          totalValue,
		buyer:               buyer,
		products:            products,
		status:              Created,
		updatedOn:           time.Now().UTC(),
		isConstructed:       true,
	}, nil
}

// RestoreOrder rebuilds an Order from persisted state. The id and status are
// re-validated; the creation-time invariants, total equality included, are
// not re-checked because they held when the order was first created and the
// total is not re-validated afterwards.
func RestoreOrder(
	id int,
	externalReferenceID string,
	channel Channel,
	purchaseDate time.Time,
	totalValue decimal.Decimal,
	buyer Buyer,
	products []Product,
	status Status,
	updatedOn time.Time,
) (*Order, error) {
	if id < 1 {
		return nil, ErrInvalidID
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:                  id,
		externalReferenceID: externalReferenceID,
		channel:             channel,
		purchaseDate:        purchaseDate,
		totalValue:          totalValue,
		buyer:               buyer,
		products:            products,
		status:              status,
		updatedOn:           updatedOn,
		isConstructed:       true,
	}, nil
}

// Update applies a lifecycle event to the order, advancing its status
// according to the transition table.
//
// The event must reference this order. The current status must have at
// least one legal outgoing transition (terminal statuses have none), and
// the event type must be among the ones allowed from the current status.
//
// On success the pre-transition status is returned, the order's status
// becomes the one the event type maps to, and updatedOn is bumped to the
// current UTC instant. The mutation is in-memory only; persisting it is
// the caller's responsibility.
func (o *Order) Update(e *event.Event) (Status, error) {
	if err := e.Validate(); err != nil {
		return StatusUnknown, err
	}

	if e.OrderID() != o.id {
		return StatusUnknown, ErrEventOrderIDMismatch
	}

	allowed, ok := validTransitions()[o.status]
	if !ok {
		return StatusUnknown, ErrNextStatusUnavailable
	}

	if !containsType(allowed, e.Type()) {
		return StatusUnknown, ErrInvalidEventType
	}

	newStatus, err := statusFromEventType(e.Type())
	if err != nil {
		return StatusUnknown, err
	}

	previousStatus := o.status
	o.status = newStatus
	o.updatedOn = time.Now().UTC()

	return previousStatus, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's numeric identifier.
func (o *Order) ID() int {
	return o.id
}

// ExternalReferenceID returns the caller-supplied reference, unique per channel.
func (o *Order) ExternalReferenceID() string {
	return o.externalReferenceID
}

// Channel returns the sales channel the order originated from.
func (o *Order) Channel() Channel {
	return o.channel
}

// PurchaseDate returns the UTC purchase instant.
func (o *Order) PurchaseDate() time.Time {
	return o.purchaseDate
}

// TotalValue returns the declared order total.
func (o *Order) TotalValue() decimal.Decimal {
	return o.totalValue
}

// Buyer returns the buyer who placed the order.
func (o *Order) Buyer() Buyer {
	return o.buyer
}

// Products returns the order's line items.
func (o *Order) Products() []Product {
	return o.products
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// UpdatedOn returns the UTC instant of the last status mutation.
func (o *Order) UpdatedOn() time.Time {
	return o.updatedOn
}

func productsTotal(products []Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Subtotal())
	}
	return total
}

func containsType(types []event.Type, t event.Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
