package order

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductSkuEmpty is returned when the product's sku is blank.
	ErrProductSkuEmpty = errs.NewValueIsRequiredErrorWithCause(
		"sku", errors.New("Product's sku can not be null or empty."))

	// ErrProductNameEmpty is returned when the product's name is blank.
	ErrProductNameEmpty = errs.NewValueIsRequiredErrorWithCause(
		"name", errors.New("Product's name can not be null or empty."))

	// ErrProductDescriptionEmpty is returned when the product's description is blank.
	ErrProductDescriptionEmpty = errs.NewValueIsRequiredErrorWithCause(
		"description", errors.New("Product's description can not be null or empty."))

	// ErrProductPriceNotPositive is returned when the product's price is zero or negative.
	ErrProductPriceNotPositive = errs.NewValueIsInvalidErrorWithCause(
		"price", errors.New("Product's price must be greater than 0."))

	// ErrProductQuantityNotPositive is returned when the product's quantity is zero or negative.
	ErrProductQuantityNotPositive = errs.NewValueIsInvalidErrorWithCause(
		"quantity", errors.New("Product's quantity must be greater than 0."))
)

// Product is the value object describing one line item of an order.
// It is immutable once constructed. An order may legally carry several
// line items with the same sku.
type Product struct {
	sku         string
	name        string
	description string
	price       decimal.Decimal
	quantity    int

	isConstructed bool
}

// NewProduct creates a Product after validating its fields.
// Validation is sequential and stops at the first failure: sku, name and
// description must be non-blank, price and quantity strictly positive.
func NewProduct(sku, name, description string, price decimal.Decimal, quantity int) (Product, error) {
	if strings.TrimSpace(sku) == "" {
		return Product{}, ErrProductSkuEmpty
	}

	if strings.TrimSpace(name) == "" {
		return Product{}, ErrProductNameEmpty
	}

	if strings.TrimSpace(description) == "" {
		return Product{}, ErrProductDescriptionEmpty
	}

	if !price.IsPositive() {
		return Product{}, ErrProductPriceNotPositive
	}

	if quantity <= 0 {
		return Product{}, ErrProductQuantityNotPositive
	}

	return Product{
		sku:           sku,
		name:          name,
		description:   description,
		price:         price,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// SKU returns the product's stock keeping unit.
func (p Product) SKU() string {
	return p.sku
}

// Name returns the product's display name.
func (p Product) Name() string {
	return p.name
}

// Description returns the product's description.
func (p Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p Product) Price() decimal.Decimal {
	return p.price
}

// Quantity returns how many units the line item covers.
func (p Product) Quantity() int {
	return p.quantity
}

// Subtotal returns price multiplied by quantity.
func (p Product) Subtotal() decimal.Decimal {
	return p.price.Mul(decimal.NewFromInt(int64(p.quantity)))
}
