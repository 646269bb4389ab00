// Package http exposes the ordering use cases over an echo HTTP server.
// Handlers bind request bodies, run the matching pipeline, and map the
// uniform response envelope onto HTTP status codes.
package http

import (
	"net/http"

	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the use case pipelines.
type Server struct {
	createOrder       pipeline.Pipeline[commands.CreateOrderCommand, commands.CreateOrderResponse]
	updateOrderStatus pipeline.Pipeline[commands.UpdateOrderStatusCommand, commands.UpdateOrderStatusResponse]
	getOrder          pipeline.Pipeline[queries.GetOrderQuery, queries.GetOrderResponse]
	getOrders         pipeline.Pipeline[queries.GetOrdersQuery, queries.OrdersPagedResponse]
	getAnalytics      pipeline.Pipeline[queries.GetOrderAnalyticsQuery, queries.OrderAnalyticsResponse]
}

// NewServer creates an HTTP server around the assembled use case pipelines.
func NewServer(
	createOrder pipeline.Pipeline[commands.CreateOrderCommand, commands.CreateOrderResponse],
	updateOrderStatus pipeline.Pipeline[commands.UpdateOrderStatusCommand, commands.UpdateOrderStatusResponse],
	getOrder pipeline.Pipeline[queries.GetOrderQuery, queries.GetOrderResponse],
	getOrders pipeline.Pipeline[queries.GetOrdersQuery, queries.OrdersPagedResponse],
	getAnalytics pipeline.Pipeline[queries.GetOrderAnalyticsQuery, queries.OrderAnalyticsResponse],
) *Server {
	return &Server{
		createOrder:       createOrder,
		updateOrderStatus: updateOrderStatus,
		getOrder:          getOrder,
		getOrders:         getOrders,
		getAnalytics:      getAnalytics,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/analytics", s.GetOrderAnalytics)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PUT("/orders/:orderID/status", s.UpdateOrderStatus)
}

type createOrderRequest struct {
	CustomerID string `json:"customerId"`
	Items      []struct {
		ProductID string  `json:"productId"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unitPrice"`
	} `json:"items"`
}

type updateOrderStatusRequest struct {
	NewStatus string `json:"newStatus"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - creates an order with line items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, pipeline.Failure[commands.CreateOrderResponse](
			pipeline.CodeValidationFailed, "Invalid request body",
		))
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd := commands.NewCreateOrderCommand(req.CustomerID, items)
	resp := s.createOrder.Execute(ctx.Request().Context(), cmd)
	return ctx.JSON(statusOf(resp.Code(), http.StatusCreated), resp)
}

// UpdateOrderStatus handles PUT /api/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req updateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, pipeline.Failure[commands.UpdateOrderStatusResponse](
			pipeline.CodeValidationFailed, "Invalid request body",
		))
	}

	cmd := commands.NewUpdateOrderStatusCommand(ctx.Param("orderID"), req.NewStatus)
	resp := s.updateOrderStatus.Execute(ctx.Request().Context(), cmd)
	return ctx.JSON(statusOf(resp.Code(), http.StatusOK), resp)
}

// GetOrder handles GET /api/orders/:orderID - retrieves one order in full.
func (s *Server) GetOrder(ctx echo.Context) error {
	query := queries.NewGetOrderQuery(ctx.Param("orderID"))
	resp := s.getOrder.Execute(ctx.Request().Context(), query)
	return ctx.JSON(statusOf(resp.Code(), http.StatusOK), resp)
}

// GetOrders handles GET /api/orders - retrieves a page of order summaries.
func (s *Server) GetOrders(ctx echo.Context) error {
	page := intQueryParam(ctx, "page", 1)
	pageSize := intQueryParam(ctx, "pageSize", 10)

	query := queries.NewGetOrdersQuery(page, pageSize, ctx.QueryParam("status"))
	resp := s.getOrders.Execute(ctx.Request().Context(), query)
	return ctx.JSON(statusOf(resp.Code(), http.StatusOK), resp)
}

// GetOrderAnalytics handles GET /api/orders/analytics.
func (s *Server) GetOrderAnalytics(ctx echo.Context) error {
	query := queries.NewGetOrderAnalyticsQuery()
	resp := s.getAnalytics.Execute(ctx.Request().Context(), query)
	return ctx.JSON(statusOf(resp.Code(), http.StatusOK), resp)
}

// statusOf maps a pipeline outcome code to an HTTP status. successStatus
// is used for CodeOK so creation endpoints can answer 201.
func statusOf(code pipeline.Code, successStatus int) int {
	switch code {
	case pipeline.CodeOK:
		return successStatus
	case pipeline.CodeValidationFailed, pipeline.CodeBadRequest:
		return http.StatusBadRequest
	case pipeline.CodeNotFound:
		return http.StatusNotFound
	case pipeline.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}

	var value int
	if err := echo.QueryParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return fallback
	}
	return value
}
