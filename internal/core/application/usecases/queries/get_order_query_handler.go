package queries

import (
	"context"

	"orders/internal/core/ports"

	"go.uber.org/zap"
)

// GetOrderQueryHandler retrieves a single order together with its complete
// event history.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	events ports.EventRepository
	logger *zap.Logger
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(
	orders ports.OrderRepository,
	events ports.EventRepository,
	logger *zap.Logger,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
		events: events,
		logger: logger,
	}
}

// Handle executes the lookup. A missing order propagates as not-found.
// The event history is fetched independently: a failure there degrades
// the response to an empty event list instead of failing the lookup.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	foundOrder, err := h.orders.GetByID(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	response := orderResponseFrom(foundOrder)

	events, err := h.events.GetAllByOrderID(ctx, query.OrderID())
	if err != nil {
		h.logger.Warn("failed to fetch events for order, returning empty history",
			zap.Int("order_id", query.OrderID()),
			zap.Error(err),
		)
		return response, nil
	}

	for _, e := range events {
		response.Events = append(response.Events, eventResponseFrom(e))
	}

	return response, nil
}
