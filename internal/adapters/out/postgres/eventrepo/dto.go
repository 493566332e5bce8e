// Package eventrepo provides data transfer objects and mapping functions
// for event persistence. Events are append-only: they are inserted once
// and never updated, and the unique index on event_id is the storage-level
// constraint the idempotent registration protocol relies on.
package eventrepo

import (
	"time"

	"orders/internal/core/domain/model/event"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting lifecycle events.
// The internal uuid identity is storage-assigned at insert time; the
// externally supplied event_id carries the globally unique business identity.
type EventDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID int       `gorm:"column:order_id;index"`
	EventID string    `gorm:"uniqueIndex"`
	Type    string
	Date    time.Time `gorm:"index"`
	User    *string
}

// TableName specifies the database table name for event entities.
func (EventDTO) TableName() string {
	return "events"
}

// fromDomain converts an event entity to its database representation,
// assigning the internal storage identity.
func fromDomain(aggregate *event.Event) EventDTO {
	return EventDTO{
		ID:      uuid.New(),
		OrderID: aggregate.OrderID(),
		EventID: aggregate.ID(),
		Type:    aggregate.Type().String(),
		Date:    aggregate.Date(),
		User:    aggregate.User(),
	}
}

// toDomain converts a database DTO back to an event entity.
func toDomain(dto EventDTO) (*event.Event, error) {
	typ, err := event.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	return event.Restore(dto.OrderID, dto.EventID, typ, dto.Date.UTC(), dto.User)
}
