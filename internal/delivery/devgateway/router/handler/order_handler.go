package handler

import (
	"net/http"

	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves checkout and order history.
type OrderHandler struct {
	store repository.ShopRepository
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(store repository.ShopRepository) *OrderHandler {
	return &OrderHandler{store: store}
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	order, err := h.store.Checkout(c.Request().Context(), userID)
	if err != nil {
		return storeError(err)
	}

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) List(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	orders, err := h.store.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return storeError(err)
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}

	return c.JSON(http.StatusOK, resp)
}
