package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sbcommerce/storefront-system/internal/api/metrics"
	"github.com/sbcommerce/storefront-system/internal/core/domain"
	"github.com/sbcommerce/storefront-system/internal/core/ports"
)

// CartHandler exposes the session-scoped cart. Every route requires the
// X-Session-ID header; none requires authentication, because the cart is
// bound to the browsing session, not the identity.
type CartHandler struct {
	cartService    ports.CartService
	productService ports.ProductService
}

func NewCartHandler(cartService ports.CartService, productService ports.ProductService) *CartHandler {
	return &CartHandler{cartService: cartService, productService: productService}
}

// Get handles GET /v1/cart.
//
// @Summary      Get the session cart
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header    string  true  "Browsing session id"
// @Success      200           {object}  cartResponse
// @Failure      400           {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	view, err := h.cartService.Get(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// Add handles POST /v1/cart/items. When the request carries only a
// product id, name and price are resolved from the catalog; a snapshot
// posted by the client is trusted as-is. Invalid snapshots are dropped
// by the cart without an error, so the response is always the current
// cart state.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string              true  "Browsing session id"
// @Param        body          body      addCartItemRequest  true  "Product snapshot or bare product id"
// @Success      200           {object}  cartResponse
// @Failure      400           {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) Add(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item := ports.AddItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Quantity:  req.Quantity,
	}

	if item.Name == "" {
		product, err := h.productService.GetProduct(c.Request().Context(), req.ProductID)
		if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
			return err
		}
		if err == nil {
			item.Name = product.Name
			item.Price = product.Price
			item.Image = product.Image
		}
	}

	view, err := h.cartService.Add(c.Request().Context(), sessionID, item)
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// SetQuantity handles PUT /v1/cart/items/:product_id. A quantity of zero
// or below removes the line.
//
// @Summary      Set a line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string              true  "Browsing session id"
// @Param        product_id    path      string              true  "Product id"
// @Param        body          body      setQuantityRequest  true  "Absolute quantity"
// @Success      200           {object}  cartResponse
// @Failure      400           {object}  errorResponse
// @Router       /v1/cart/items/{product_id} [put]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	view, err := h.cartService.SetQuantity(c.Request().Context(), sessionID, c.Param("product_id"), req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("set_quantity").Inc()
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// Increment handles POST /v1/cart/items/:product_id/increment.
//
// @Summary      Increment a line's quantity
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header    string  true  "Browsing session id"
// @Param        product_id    path      string  true  "Product id"
// @Success      200           {object}  cartResponse
// @Router       /v1/cart/items/{product_id}/increment [post]
func (h *CartHandler) Increment(c echo.Context) error {
	return h.step(c, "increment", h.cartService.Increment)
}

// Decrement handles POST /v1/cart/items/:product_id/decrement. A
// quantity that would drop below one removes the line.
//
// @Summary      Decrement a line's quantity
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header    string  true  "Browsing session id"
// @Param        product_id    path      string  true  "Product id"
// @Success      200           {object}  cartResponse
// @Router       /v1/cart/items/{product_id}/decrement [post]
func (h *CartHandler) Decrement(c echo.Context) error {
	return h.step(c, "decrement", h.cartService.Decrement)
}

// Remove handles DELETE /v1/cart/items/:product_id. Removing an absent
// line is a no-op, not an error.
//
// @Summary      Remove a line
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header    string  true  "Browsing session id"
// @Param        product_id    path      string  true  "Product id"
// @Success      200           {object}  cartResponse
// @Router       /v1/cart/items/{product_id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	view, err := h.cartService.Remove(c.Request().Context(), sessionID, c.Param("product_id"))
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Param        X-Session-ID  header  string  true  "Browsing session id"
// @Success      204
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.Clear(c.Request().Context(), sessionID); err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) step(c echo.Context, op string, fn func(ctx context.Context, sessionID, productID string, step int) (*ports.CartView, error)) error {
	sessionID, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	// Body is optional; a missing or unparseable step defaults downstream.
	var req stepRequest
	_ = c.Bind(&req)

	view, err := fn(c.Request().Context(), sessionID, c.Param("product_id"), req.Step)
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues(op).Inc()
	return c.JSON(http.StatusOK, toCartResponse(view))
}

func toCartResponse(view *ports.CartView) cartResponse {
	lines := view.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{Lines: lines, Total: view.Total, Count: view.Count}
}
