package order

import (
	"fmt"

	"orders/internal/core/domain/model/event"
	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose transitions are driven by reported
// events rather than direct status assignment:
//
//	Created ──┬──> PaymentReceived ──> Invoiced ──> Returned
//	          │
//	          └──> Canceled
//
// Canceled and Returned are terminal: no event may advance an order out
// of them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Created is the initial status assigned when an order is registered.
	Created

	// PaymentReceived indicates payment for the order was collected.
	PaymentReceived

	// Canceled indicates the order was canceled. Terminal.
	Canceled

	// Invoiced indicates an invoice was issued for the order.
	Invoiced

	// Returned indicates the purchased goods were returned. Terminal.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		Created:         "Created",
		PaymentReceived: "PaymentReceived",
		Canceled:        "Canceled",
		Invoiced:        "Invoiced",
		Returned:        "Returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:         "Created",
		PaymentReceived: "PaymentReceived",
		Canceled:        "Canceled",
		Invoiced:        "Invoiced",
		Returned:        "Returned",
	}
}

// validTransitions returns the fixed mapping from a current status to the
// event types that may legally be applied to it. A status absent from the
// map has no legal outgoing transition.
func validTransitions() map[Status][]event.Type {
	return map[Status][]event.Type{
		Created:         {event.TypePaymentReceived, event.TypeCanceled},
		PaymentReceived: {event.TypeInvoiced},
		Invoiced:        {event.TypeReturned},
	}
}

// statusFromEventType maps an event type to the status it drives an order
// into. Event types and order statuses deliberately share names, so the
// correspondence is one-to-one.
func statusFromEventType(t event.Type) (Status, error) {
	switch t {
	case event.TypePaymentReceived:
		return PaymentReceived, nil
	case event.TypeCanceled:
		return Canceled, nil
	case event.TypeInvoiced:
		return Invoiced, nil
	case event.TypeReturned:
		return Returned, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"event type",
			fmt.Errorf("%d has no corresponding order status", t),
		)
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string representation.
// Parsing is case-sensitive: values are expected exactly as produced by String.
func StatusFromString(value string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == value {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", value),
	)
}
