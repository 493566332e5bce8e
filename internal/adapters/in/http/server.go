// Package http exposes the order lifecycle operations over HTTP.
// It coordinates between echo handlers and the application use cases,
// translating the error taxonomy into status codes: domain validation and
// not-found failures become 400 with a message list, uniqueness conflicts
// become 409, and everything else becomes a generic 500.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/event"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the order lifecycle operations.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	registerEventHandler commands.RegisterEventCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	searchOrdersHandler queries.SearchOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	registerEventHandler commands.RegisterEventCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		registerEventHandler: registerEventHandler,
		getOrderHandler:      getOrderHandler,
		searchOrdersHandler:  searchOrdersHandler,
	}
}

// RegisterRoutes attaches the order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:orderId/events", s.RegisterEvent)
	v1.GET("/orders/search", s.SearchOrders)
	v1.GET("/orders/:orderId", s.GetOrder)
}

// CreateOrder handles POST /api/v1/orders - registers a new purchase order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body.")
	}

	channel, err := order.ChannelFromString(request.Channel)
	if err != nil {
		return errorResponse(ctx, err)
	}

	products := make([]commands.ProductData, 0, len(request.Products))
	for _, p := range request.Products {
		products = append(products, commands.ProductData{
			SKU:         p.SKU,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Quantity:    p.Quantity,
		})
	}

	cmd := commands.NewCreateOrderCommand(
		request.ExternalReferenceID,
		channel,
		request.PurchaseDate,
		request.TotalValue,
		commands.BuyerData{
			FirstName:      request.Buyer.FirstName,
			LastName:       request.Buyer.LastName,
			DocumentNumber: request.Buyer.DocumentNumber,
			Phone:          request.Buyer.Phone,
		},
		products,
	)

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:   result.OrderID,
		Status:    result.Status.String(),
		UpdatedOn: result.UpdatedOn,
	})
}

// RegisterEvent handles POST /api/v1/orders/:orderId/events - applies a
// reported lifecycle event to an order. Resubmitting an already-recorded
// event id yields a bare 200 acknowledgment without transition details.
func (s *Server) RegisterEvent(ctx echo.Context) error {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Order id must be an integer.")
	}

	var request RegisterEventRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body.")
	}

	eventType, err := event.TypeFromString(request.Type)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd := commands.NewRegisterEventCommand(orderID, request.ID, eventType, request.Date, request.User)

	result, err := s.registerEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if result.AlreadyRegistered {
		return ctx.NoContent(http.StatusOK)
	}

	return ctx.JSON(http.StatusOK, RegisterEventResponse{
		OrderID:        result.OrderID,
		PreviousStatus: result.PreviousStatus.String(),
		NewStatus:      result.NewStatus.String(),
		UpdatedOn:      result.UpdatedOn,
	})
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order with
// its complete event history.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Order id must be an integer.")
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(orderID))
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(view))
}

// SearchOrders handles GET /api/v1/orders/search - retrieves orders
// matching the optional filters, each with at most its most recent event.
func (s *Server) SearchOrders(ctx echo.Context) error {
	query := queries.NewSearchOrdersQuery()

	if raw := ctx.QueryParam("orderId"); raw != "" {
		orderID, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Order id must be an integer.")
		}
		query = query.WithOrderID(orderID)
	}

	if documentNumber := ctx.QueryParam("documentNumber"); documentNumber != "" {
		query = query.WithDocumentNumber(documentNumber)
	}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		query = query.WithStatus(status)
	}

	if raw := ctx.QueryParam("createdOnFrom"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "createdOnFrom must be an RFC 3339 timestamp.")
		}
		query = query.WithCreatedOnFrom(from)
	}

	if raw := ctx.QueryParam("createdOnTo"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "createdOnTo must be an RFC 3339 timestamp.")
		}
		query = query.WithCreatedOnTo(to)
	}

	views, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	responses := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, orderResponseFrom(view))
	}

	return ctx.JSON(http.StatusOK, responses)
}

// errorResponse classifies a use case failure into its HTTP rendering.
// Validation and not-found failures carry their original messages; any
// unclassified error is hidden behind a generic message.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Errors: []string{messageOf(err)}})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrObjectNotFound):
		return badRequest(ctx, messageOf(err))
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Errors: []string{"An unexpected error occurred."},
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: []string{message}})
}

// messageOf extracts the user-facing text of a classified error: the
// underlying cause when one was attached, the formatted error otherwise.
func messageOf(err error) string {
	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) && required.Cause != nil {
		return required.Cause.Error()
	}

	var invalid *errs.ValueIsInvalidError
	if errors.As(err, &invalid) && invalid.Cause != nil {
		return invalid.Cause.Error()
	}

	var conflict *errs.ConflictError
	if errors.As(err, &conflict) && conflict.Cause != nil {
		return conflict.Cause.Error()
	}

	return err.Error()
}
