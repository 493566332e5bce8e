package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// ordersCounter is the named sequence order ids are allocated from.
const ordersCounter = "orders"

// CreateOrderResult reports the outcome of a successful order creation.
type CreateOrderResult struct {
	OrderID   int
	Status    order.Status
	UpdatedOn time.Time
}

// CreateOrderCommandHandler handles the business logic for order creation:
// it constructs the buyer and line items, allocates the next order id from
// the orders counter, builds the aggregate, and persists it.
type CreateOrderCommandHandler struct {
	orders   ports.OrderRepository
	counters ports.CounterRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	counters ports.CounterRepository,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:   orders,
		counters: counters,
	}
}

// Handle processes the order creation command.
//
// Domain construction short-circuits on the first invalid value: the buyer
// first, then each product in request order, then the aggregate itself.
// The order id is allocated after buyer and products validate. A duplicate
// external reference id within the same channel surfaces as
// errs.ConflictError from the repository and is propagated untouched.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	buyer, err := order.NewBuyer(
		cmd.Buyer().FirstName,
		cmd.Buyer().LastName,
		cmd.Buyer().DocumentNumber,
		cmd.Buyer().Phone,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	products := make([]order.Product, 0, len(cmd.Products()))
	for _, p := range cmd.Products() {
		product, productErr := order.NewProduct(p.SKU, p.Name, p.Description, p.Price, p.Quantity)
		if productErr != nil {
			return CreateOrderResult{}, productErr
		}
		products = append(products, product)
	}

	id, err := h.counters.Next(ctx, ordersCounter)
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		id,
		cmd.ExternalReferenceID(),
		cmd.Channel(),
		cmd.PurchaseDate(),
		cmd.TotalValue(),
		buyer,
		products,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.orders.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:   newOrder.ID(),
		Status:    newOrder.Status(),
		UpdatedOn: newOrder.UpdatedOn(),
	}, nil
}
