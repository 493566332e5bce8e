package queries

import (
	"context"
	"errors"
	"sync"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"go.uber.org/zap"
)

// SearchOrdersQueryHandler retrieves orders matching a filter predicate and
// decorates each with its single most recent event.
type SearchOrdersQueryHandler struct {
	orders ports.OrderRepository
	events ports.EventRepository
	logger *zap.Logger
}

// NewSearchOrdersQueryHandler creates a handler for filtered order searches.
func NewSearchOrdersQueryHandler(
	orders ports.OrderRepository,
	events ports.EventRepository,
	logger *zap.Logger,
) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{
		orders: orders,
		events: events,
		logger: logger,
	}
}

// Handle executes the search. The per-order most-recent-event lookups fan
// out concurrently and are joined before returning. A failed lookup
// degrades that one order to an empty event list; an order with no events
// simply gets none attached. Neither case fails the batch.
func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	foundOrders, err := h.orders.GetBySpecification(ctx, query.Specification())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(foundOrders))
	for i, o := range foundOrders {
		responses[i] = orderResponseFrom(o)
	}

	var wg sync.WaitGroup
	for i := range responses {
		wg.Add(1)
		go func(i int, orderID int) {
			defer wg.Done()

			lastEvent, eventErr := h.events.GetMostRecentByOrderID(ctx, orderID)
			if eventErr != nil {
				if !errors.Is(eventErr, errs.ErrObjectNotFound) {
					h.logger.Warn("failed to fetch most recent event for order",
						zap.Int("order_id", orderID),
						zap.Error(eventErr),
					)
				}
				return
			}

			responses[i].Events = []EventResponse{eventResponseFrom(lastEvent)}
		}(i, responses[i].OrderID)
	}
	wg.Wait()

	return responses, nil
}
