package order

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
)

var (
	// ErrBuyerIsNotConstructed is returned when a Buyer instance was not created
	// through the NewBuyer factory method.
	ErrBuyerIsNotConstructed = errors.New("Buyer must be created via NewBuyer constructor")

	// ErrBuyerFirstNameEmpty is returned when the buyer's first name is blank.
	ErrBuyerFirstNameEmpty = errs.NewValueIsRequiredErrorWithCause(
		"firstName", errors.New("Buyer's first name must not be empty."))

	// ErrBuyerLastNameEmpty is returned when the buyer's last name is blank.
	ErrBuyerLastNameEmpty = errs.NewValueIsRequiredErrorWithCause(
		"lastName", errors.New("Buyer's last name must not be empty."))

	// ErrBuyerDocumentNumberEmpty is returned when the buyer's document number is blank.
	ErrBuyerDocumentNumberEmpty = errs.NewValueIsRequiredErrorWithCause(
		"documentNumber", errors.New("Buyer's document number must not be empty."))

	// ErrBuyerPhoneEmpty is returned when the buyer's phone is blank.
	ErrBuyerPhoneEmpty = errs.NewValueIsRequiredErrorWithCause(
		"phone", errors.New("Buyer's phone must not be empty."))
)

// Buyer is the value object identifying who placed an order.
// It is immutable once constructed and owned exclusively by one order.
type Buyer struct {
	firstName      string
	lastName       string
	documentNumber string
	phone          string

	isConstructed bool
}

// NewBuyer creates a Buyer after validating that every field is non-blank.
// Validation is sequential and stops at the first failure.
func NewBuyer(firstName, lastName, documentNumber, phone string) (Buyer, error) {
	if strings.TrimSpace(firstName) == "" {
		return Buyer{}, ErrBuyerFirstNameEmpty
	}

	if strings.TrimSpace(lastName) == "" {
		return Buyer{}, ErrBuyerLastNameEmpty
	}

	if strings.TrimSpace(documentNumber) == "" {
		return Buyer{}, ErrBuyerDocumentNumberEmpty
	}

	if strings.TrimSpace(phone) == "" {
		return Buyer{}, ErrBuyerPhoneEmpty
	}

	return Buyer{
		firstName:      firstName,
		lastName:       lastName,
		documentNumber: documentNumber,
		phone:          phone,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Buyer instance was properly constructed through NewBuyer.
func (b Buyer) Validate() error {
	if !b.isConstructed {
		return ErrBuyerIsNotConstructed
	}
	return nil
}

// FirstName returns the buyer's first name.
func (b Buyer) FirstName() string {
	return b.firstName
}

// LastName returns the buyer's last name.
func (b Buyer) LastName() string {
	return b.lastName
}

// DocumentNumber returns the buyer's identity document number.
func (b Buyer) DocumentNumber() string {
	return b.documentNumber
}

// Phone returns the buyer's phone number.
func (b Buyer) Phone() string {
	return b.phone
}
