package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sbcommerce/storefront-system/internal/api/metrics"
	"github.com/sbcommerce/storefront-system/internal/core/domain"
	"github.com/sbcommerce/storefront-system/internal/core/ports"
)

// OrderDispatcher is the interface the handler uses to hand placed
// orders to the async workers.
type OrderDispatcher interface {
	Enqueue(orderID string)
}

// OrderHandler handles checkout and order queries.
type OrderHandler struct {
	service    ports.OrderService
	dispatcher OrderDispatcher
}

func NewOrderHandler(service ports.OrderService, dispatcher OrderDispatcher) *OrderHandler {
	return &OrderHandler{service: service, dispatcher: dispatcher}
}

type checkoutResponse struct {
	OrderID   string    `json:"order_id"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type listOrdersResponse struct {
	Data []domain.Order `json:"data"`
}

// Checkout handles POST /v1/checkout — snapshots the session cart into a
// pending order, clears the cart, and enqueues the order for settlement.
//
// @Summary      Place an order from the session cart
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        X-Session-ID  header    string  true  "Browsing session id"
// @Success      202           {object}  checkoutResponse
// @Failure      401           {object}  errorResponse
// @Failure      422           {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	result, err := h.service.Checkout(c.Request().Context(), userID, sessionID)
	if err != nil {
		return err
	}

	h.dispatcher.Enqueue(result.OrderID)
	metrics.OrdersCreatedTotal.Inc()

	return c.JSON(http.StatusAccepted, checkoutResponse{
		OrderID:   result.OrderID,
		Total:     result.Total,
		Status:    result.Status,
		CreatedAt: result.CreatedAt,
	})
}

// List handles GET /v1/orders — the authenticated user's own orders.
//
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, listOrdersResponse{Data: orders})
}
