package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secureshop/backend/internal/middleware/auth"
	"github.com/secureshop/backend/internal/mykafka"
	"github.com/secureshop/backend/internal/store"
)

type CheckoutHandler struct {
	Store    store.Store
	Producer *mykafka.Producer
}

// Checkout runs the priced → stock-checked → committed transition. An
// oversized quantity is rejected, never clamped.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Quantity < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}

	order, err := h.Store.Checkout(c.Request().Context(), principal.ID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, store.ErrInsufficientStock):
			return echo.NewHTTPError(http.StatusBadRequest, "insufficient stock")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "checkout failed")
		}
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(principal.ID), map[string]interface{}{
		"type":      "order_created",
		"orderID":   order.ID,
		"userID":    principal.ID,
		"productID": order.ProductID,
		"quantity":  order.Quantity,
		"total":     order.Total,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"order":   order,
	})
}
