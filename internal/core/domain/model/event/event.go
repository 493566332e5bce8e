package event

import (
	"errors"
	"strings"
	"time"

	"orders/internal/pkg/errs"
)

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not created
	// through the New factory method.
	ErrEventIsNotConstructed = errors.New("Event must be created via New constructor")

	// ErrInvalidOrderID is returned when the referenced order id is not positive.
	ErrInvalidOrderID = errs.NewValueIsInvalidErrorWithCause(
		"orderId", errors.New("OrderId must have a valid value."))

	// ErrIDEmpty is returned when the externally supplied event id is blank.
	ErrIDEmpty = errs.NewValueIsRequiredErrorWithCause(
		"eventId", errors.New("Id must have a non null & not empty value."))

	// ErrUserEmpty is returned when a user was supplied but is empty.
	// An absent user is allowed; an empty one is not.
	ErrUserEmpty = errs.NewValueIsInvalidErrorWithCause(
		"user", errors.New("User must have a not empty or null value."))
)

// Event is an immutable record of a lifecycle occurrence reported for an
// order. Its identity on the wire is the externally supplied event id;
// global uniqueness of that id is enforced by the persistence layer,
// not here, because it must hold across all stored events.
type Event struct {
	orderID int
	id      string
	typ     Type
	date    time.Time
	user    *string

	isConstructed bool
}

// New creates an Event after validating its inputs.
//
// Validation is sequential and stops at the first failure:
// the order id must be positive, the event id must be non-blank, and the
// user, when supplied, must not be empty.
func New(orderID int, id string, typ Type, date time.Time, user *string) (*Event, error) {
	if orderID < 1 {
		return nil, ErrInvalidOrderID
	}

	if strings.TrimSpace(id) == "" {
		return nil, ErrIDEmpty
	}

	if user != nil && *user == "" {
		return nil, ErrUserEmpty
	}

	return &Event{
		orderID:       orderID,
		id:            id,
		typ:           typ,
		date:          date,
		user:          user,
		isConstructed: true,
	}, nil
}

// Restore rebuilds an Event from persisted state. The stored event type is
// re-validated; the remaining fields were validated when the event was
// first created.
func Restore(orderID int, id string, typ Type, date time.Time, user *string) (*Event, error) {
	if err := typ.Validate(); err != nil {
		return nil, err
	}

	return &Event{
		orderID:       orderID,
		id:            id,
		typ:           typ,
		date:          date,
		user:          user,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event instance was properly constructed through New.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// OrderID returns the id of the order this event applies to.
func (e *Event) OrderID() int {
	return e.orderID
}

// ID returns the externally supplied event id.
func (e *Event) ID() string {
	return e.id
}

// Type returns the kind of occurrence this event reports.
func (e *Event) Type() Type {
	return e.typ
}

// Date returns the moment the occurrence is reported to have happened.
func (e *Event) Date() time.Time {
	return e.date
}

// User returns who reported the event, or nil when not supplied.
func (e *Event) User() *string {
	return e.user
}
