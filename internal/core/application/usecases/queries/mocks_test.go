package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetByID(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBySpecification(ctx context.Context, spec ports.OrderSpecification) ([]*order.Order, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) GetAllByOrderID(ctx context.Context, orderID int) ([]*event.Event, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventRepository) GetMostRecentByOrderID(ctx context.Context, orderID int) (*event.Event, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventRepository) Add(ctx context.Context, aggregate *event.Event) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func storedOrder(t *testing.T, id int, status order.Status) *order.Order {
	t.Helper()

	buyer, err := order.NewBuyer("John", "Doe", "12345678", "555-0100")
	require.NoError(t, err)
	product, err := order.NewProduct("SKU-1", "Notebook", "15 inch notebook", decimal.NewFromInt(100), 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id, "ext-001", order.Ecommerce,
		time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		decimal.NewFromInt(100),
		buyer, []order.Product{product}, status, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func storedEvent(t *testing.T, orderID int, id string, typ event.Type, date time.Time) *event.Event {
	t.Helper()

	e, err := event.Restore(orderID, id, typ, date, nil)
	require.NoError(t, err)
	return e
}
