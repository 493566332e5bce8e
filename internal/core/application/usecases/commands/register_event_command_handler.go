package commands

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// RegisterEventResult reports the outcome of event registration.
//
// When AlreadyRegistered is true the submitted event id had been recorded
// by an earlier call; the operation is a no-op success and the transition
// fields carry no information.
type RegisterEventResult struct {
	OrderID           int
	PreviousStatus    order.Status
	NewStatus         order.Status
	UpdatedOn         time.Time
	AlreadyRegistered bool
}

// RegisterEventCommandHandler applies a reported lifecycle event to an
// order: it fetches the order, constructs the event, advances the
// aggregate in memory, then persists the event followed by the updated
// order.
type RegisterEventCommandHandler struct {
	orders ports.OrderRepository
	events ports.EventRepository
}

// NewRegisterEventCommandHandler creates a handler for event registration.
func NewRegisterEventCommandHandler(
	orders ports.OrderRepository,
	events ports.EventRepository,
) RegisterEventCommandHandler {
	return RegisterEventCommandHandler{
		orders: orders,
		events: events,
	}
}

// Handle processes the event registration command.
//
// The event is persisted before the order. A duplicate event id conflict
// on the event insert means the event was already recorded by an earlier
// call, so the whole operation resolves to a no-op success and the order
// update never runs. Any other event-save failure, or a failure saving
// the order afterwards, is propagated; in both cases the aggregate's
// in-memory mutation never reached the order row.
//
// The two writes are separate statements with no surrounding transaction:
// a crash between them leaves an event recorded without the order's
// status updated. This window is an accepted limitation of the protocol.
func (h *RegisterEventCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterEventCommand,
) (RegisterEventResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterEventResult{}, err
	}

	existingOrder, err := h.orders.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return RegisterEventResult{}, err
	}

	newEvent, err := event.New(
		existingOrder.ID(),
		cmd.EventID(),
		cmd.EventType(),
		cmd.Date(),
		cmd.User(),
	)
	if err != nil {
		return RegisterEventResult{}, err
	}

	previousStatus, err := existingOrder.Update(newEvent)
	if err != nil {
		return RegisterEventResult{}, err
	}

	if err = h.events.Add(ctx, newEvent); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return RegisterEventResult{
				OrderID:           existingOrder.ID(),
				AlreadyRegistered: true,
			}, nil
		}
		return RegisterEventResult{}, err
	}

	if err = h.orders.Update(ctx, existingOrder); err != nil {
		return RegisterEventResult{}, err
	}

	return RegisterEventResult{
		OrderID:        existingOrder.ID(),
		PreviousStatus: previousStatus,
		NewStatus:      existingOrder.Status(),
		UpdatedOn:      existingOrder.UpdatedOn(),
	}, nil
}
