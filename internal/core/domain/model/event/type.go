package event

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Type represents the kind of lifecycle occurrence reported for an order.
// Each type corresponds one-to-one with the order status it drives the
// order into, so the names are shared with the order status enumeration.
type Type int

const (
	// TypeUnknown represents an invalid or undefined event type.
	// This value (0) helps catch uninitialized Type values.
	TypeUnknown Type = iota

	// TypePaymentReceived reports that payment for the order was collected.
	TypePaymentReceived

	// TypeCanceled reports that the order was canceled.
	TypeCanceled

	// TypeInvoiced reports that an invoice was issued for the order.
	TypeInvoiced

	// TypeReturned reports that the purchased goods were returned.
	TypeReturned
)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:         "Unknown",
		TypePaymentReceived: "PaymentReceived",
		TypeCanceled:        "Canceled",
		TypeInvoiced:        "Invoiced",
		TypeReturned:        "Returned",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypePaymentReceived: "PaymentReceived",
		TypeCanceled:        "Canceled",
		TypeInvoiced:        "Invoiced",
		TypeReturned:        "Returned",
	}
}

// Validate checks if the Type value is valid.
// TypeUnknown (0) and any other values are invalid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// String returns the human-readable name of the event type.
// It implements the fmt.Stringer interface and is safe to call on any
// Type value, including invalid ones.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses an event type from its string representation.
// Parsing is case-sensitive: values are expected exactly as produced by String.
func TypeFromString(value string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == value {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"event type",
		fmt.Errorf("%q is not a valid event type", value),
	)
}
