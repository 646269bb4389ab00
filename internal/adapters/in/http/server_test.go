package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/core/application/pipeline"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler[Req any, T any] struct {
	resp pipeline.Response[T]
	err  error
}

func (h stubHandler[Req, T]) Handle(_ context.Context, _ Req) (pipeline.Response[T], error) {
	return h.resp, h.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serverStubs struct {
	createOrder  stubHandler[commands.CreateOrderCommand, commands.CreateOrderResponse]
	updateStatus stubHandler[commands.UpdateOrderStatusCommand, commands.UpdateOrderStatusResponse]
	getOrder     stubHandler[queries.GetOrderQuery, queries.GetOrderResponse]
	getOrders    stubHandler[queries.GetOrdersQuery, queries.OrdersPagedResponse]
	getAnalytics stubHandler[queries.GetOrderAnalyticsQuery, queries.OrderAnalyticsResponse]
}

func newTestServer(stubs serverStubs) *echo.Echo {
	logger := testLogger()
	server := httpadapter.NewServer(
		pipeline.New("CreateOrderCommand", commands.NewCreateOrderValidator(), pipeline.Handler[commands.CreateOrderCommand, commands.CreateOrderResponse](stubs.createOrder), logger),
		pipeline.New("UpdateOrderStatusCommand", commands.NewUpdateOrderStatusValidator(), pipeline.Handler[commands.UpdateOrderStatusCommand, commands.UpdateOrderStatusResponse](stubs.updateStatus), logger),
		pipeline.New("GetOrderQuery", queries.NewGetOrderValidator(), pipeline.Handler[queries.GetOrderQuery, queries.GetOrderResponse](stubs.getOrder), logger),
		pipeline.New[queries.GetOrdersQuery, queries.OrdersPagedResponse]("GetOrdersQuery", nil, stubs.getOrders, logger),
		pipeline.New[queries.GetOrderAnalyticsQuery, queries.OrderAnalyticsResponse]("GetOrderAnalyticsQuery", nil, stubs.getAnalytics, logger),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_CreateOrder_Returns201OnSuccess(t *testing.T) {
	orderID := uuid.NewString()
	e := newTestServer(serverStubs{
		createOrder: stubHandler[commands.CreateOrderCommand, commands.CreateOrderResponse]{
			resp: pipeline.OK(commands.CreateOrderResponse{OrderID: orderID},
				"Order created successfully with ID: "+orderID),
		},
	})

	body := `{"customerId":"` + uuid.NewString() + `","items":[{"productId":"` + uuid.NewString() + `","quantity":2,"unitPrice":49.99}]}`
	rec := doRequest(e, http.MethodPost, "/api/orders", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp pipeline.Response[commands.CreateOrderResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, orderID, resp.Data.OrderID)
}

func TestServer_CreateOrder_Returns400OnValidationFailure(t *testing.T) {
	e := newTestServer(serverStubs{})

	rec := doRequest(e, http.MethodPost, "/api/orders", `{"customerId":"","items":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp pipeline.Response[commands.CreateOrderResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, pipeline.MsgValidationFailed, resp.Message)
	assert.Contains(t, resp.Errors, "Customer id is required")
	assert.Contains(t, resp.Errors, "Order must contain at least one item")
}

func TestServer_UpdateOrderStatus_Returns400OnInvalidTransition(t *testing.T) {
	e := newTestServer(serverStubs{
		updateStatus: stubHandler[commands.UpdateOrderStatusCommand, commands.UpdateOrderStatusResponse]{
			err: errs.NewInvalidTransitionError("Delivered", "Pending"),
		},
	})

	rec := doRequest(e, http.MethodPut, "/api/orders/"+uuid.NewString()+"/status", `{"newStatus":"Pending"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp pipeline.Response[commands.UpdateOrderStatusResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Cannot change order status from Delivered to Pending.", resp.Message)
}

func TestServer_GetOrder_Returns404WhenMissing(t *testing.T) {
	e := newTestServer(serverStubs{
		getOrder: stubHandler[queries.GetOrderQuery, queries.GetOrderResponse]{
			resp: pipeline.Failure[queries.GetOrderResponse](pipeline.CodeNotFound, "Order not found!"),
		},
	})

	rec := doRequest(e, http.MethodGet, "/api/orders/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_GetOrders_Returns200WithPage(t *testing.T) {
	e := newTestServer(serverStubs{
		getOrders: stubHandler[queries.GetOrdersQuery, queries.OrdersPagedResponse]{
			resp: pipeline.OK(queries.OrdersPagedResponse{
				Orders:     []queries.OrderSummaryResponse{},
				TotalCount: 5,
				Page:       1,
				PageSize:   2,
				TotalPages: 3,
			}, "Orders retrieved successfully"),
		},
	})

	rec := doRequest(e, http.MethodGet, "/api/orders?page=1&pageSize=2", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp pipeline.Response[queries.OrdersPagedResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, 5, resp.Data.TotalCount)
	assert.Equal(t, 3, resp.Data.TotalPages)
}

func TestServer_GetOrderAnalytics_Returns200(t *testing.T) {
	e := newTestServer(serverStubs{
		getAnalytics: stubHandler[queries.GetOrderAnalyticsQuery, queries.OrderAnalyticsResponse]{
			resp: pipeline.OK(queries.OrderAnalyticsResponse{TotalOrders: 3},
				"Order analytics retrieved successfully"),
		},
	})

	rec := doRequest(e, http.MethodGet, "/api/orders/analytics", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp pipeline.Response[queries.OrderAnalyticsResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, 3, resp.Data.TotalOrders)
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(serverStubs{})

	rec := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
