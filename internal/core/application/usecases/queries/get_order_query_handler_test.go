package queries_test

import (
	"errors"
	"testing"
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	baseDate := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	orders := new(MockOrderRepository)
	events := new(MockEventRepository)
	orders.On("GetByID", ctx, 1).Return(storedOrder(t, 1, order.Invoiced), nil).Once()
	events.On("GetAllByOrderID", ctx, 1).Return([]*event.Event{
		storedEvent(t, 1, "evt-001", event.TypePaymentReceived, baseDate),
		storedEvent(t, 1, "evt-002", event.TypeInvoiced, baseDate.Add(time.Hour)),
	}, nil).Once()

	h := queries.NewGetOrderQueryHandler(orders, events, zap.NewNop())
	response, err := h.Handle(ctx, queries.NewGetOrderQuery(1))

	require.NoError(t, err)
	assert.Equal(t, 1, response.OrderID)
	assert.Equal(t, order.Invoiced, response.Status)
	require.Len(t, response.Events, 2)
	assert.Equal(t, "evt-001", response.Events[0].ID)
	assert.Equal(t, "evt-002", response.Events[1].ID)
	orders.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_OrderWithoutEvents(t *testing.T) {
	ctx := t.Context()

	orders := new(MockOrderRepository)
	events := new(MockEventRepository)
	orders.On("GetByID", ctx, 1).Return(storedOrder(t, 1, order.Created), nil).Once()
	events.On("GetAllByOrderID", ctx, 1).Return([]*event.Event{}, nil).Once()

	h := queries.NewGetOrderQueryHandler(orders, events, zap.NewNop())
	response, err := h.Handle(ctx, queries.NewGetOrderQuery(1))

	require.NoError(t, err)
	assert.NotNil(t, response.Events)
	assert.Empty(t, response.Events)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	orders := new(MockOrderRepository)
	events := new(MockEventRepository)
	orders.On("GetByID", ctx, 99).Return(nil, errs.NewObjectNotFoundError("orderId", 99)).Once()

	h := queries.NewGetOrderQueryHandler(orders, events, zap.NewNop())
	_, err := h.Handle(ctx, queries.NewGetOrderQuery(99))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	events.AssertNotCalled(t, "GetAllByOrderID", mock.Anything, mock.Anything)
}

func TestGetOrderQueryHandler_Handle_EventFetchFailureDegrades(t *testing.T) {
	ctx := t.Context()

	orders := new(MockOrderRepository)
	events := new(MockEventRepository)
	orders.On("GetByID", ctx, 1).Return(storedOrder(t, 1, order.Created), nil).Once()
	events.On("GetAllByOrderID", ctx, 1).Return(nil, errors.New("connection reset")).Once()

	h := queries.NewGetOrderQueryHandler(orders, events, zap.NewNop())
	response, err := h.Handle(ctx, queries.NewGetOrderQuery(1))

	require.NoError(t, err)
	assert.Equal(t, 1, response.OrderID)
	assert.Empty(t, response.Events)
}

func TestGetOrderQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var query queries.GetOrderQuery // not constructed properly

	h := queries.NewGetOrderQueryHandler(new(MockOrderRepository), new(MockEventRepository), zap.NewNop())
	_, err := h.Handle(ctx, query)

	require.Error(t, err)
	assert.Equal(t, queries.ErrGetOrderQueryIsNotConstructed, err)
}
