package commands

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/event"
)

var (
	ErrRegisterEventCommandIsNotConstructed = errors.New(
		"RegisterEventCommand must be created via NewRegisterEventCommand constructor",
	)
)

// RegisterEventCommand represents a request to apply a reported lifecycle
// event to an order. The event id is caller-supplied and globally unique;
// resubmitting a command with an already-recorded event id is safe.
type RegisterEventCommand struct {
	orderID   int
	eventID   string
	eventType event.Type
	date      time.Time
	user      *string

	isConstructed bool
}

// NewRegisterEventCommand creates a command to register a lifecycle event
// against the order identified by orderID.
func NewRegisterEventCommand(
	orderID int,
	eventID string,
	eventType event.Type,
	date time.Time,
	user *string,
) RegisterEventCommand {
	return RegisterEventCommand{
		orderID:       orderID,
		eventID:       eventID,
		eventType:     eventType,
		date:          date,
		user:          user,
		isConstructed: true,
	}
}

// Validate ensures the command was created through the constructor.
func (c RegisterEventCommand) Validate() error {
	if !c.isConstructed {
		return ErrRegisterEventCommandIsNotConstructed
	}
	return nil
}

// OrderID returns the id of the order the event applies to.
func (c RegisterEventCommand) OrderID() int {
	return c.orderID
}

// EventID returns the externally supplied event id.
func (c RegisterEventCommand) EventID() string {
	return c.eventID
}

// EventType returns the kind of occurrence being reported.
func (c RegisterEventCommand) EventType() event.Type {
	return c.eventType
}

// Date returns the reported occurrence instant.
func (c RegisterEventCommand) Date() time.Time {
	return c.date
}

// User returns who reported the event, or nil when not supplied.
func (c RegisterEventCommand) User() *string {
	return c.user
}
