package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

type cartChangeRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

// CartHandler serves the authenticated user's cart.
type CartHandler struct {
	store  repository.ShopRepository
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(store repository.ShopRepository, logger *slog.Logger) *CartHandler {
	return &CartHandler{store: store, logger: logger}
}

func (h *CartHandler) Get(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	cart, err := h.store.Cart(c.Request().Context(), userID)
	if err != nil {
		return storeError(err)
	}

	return c.JSON(http.StatusOK, cartResponse{
		ID:    cart.ID,
		Items: toCartItems(cart.Lines),
		Total: cart.Total.StringFixed(2),
	})
}

// Add merges into an existing line and answers with the merged line.
func (h *CartHandler) Add(c echo.Context) error {
	input, err := readCartChange(c)
	if err != nil {
		return err
	}
	userID, _ := middleware.UserID(c)

	line, err := h.store.AddToCart(c.Request().Context(), userID, input.ProductID, input.Quantity)
	if err != nil {
		return storeError(err)
	}

	return c.JSON(http.StatusOK, toCartItemResponse(line))
}

// Reduce answers 204 when the line dropped to zero and was removed.
func (h *CartHandler) Reduce(c echo.Context) error {
	input, err := readCartChange(c)
	if err != nil {
		return err
	}
	userID, _ := middleware.UserID(c)

	line, err := h.store.ReduceFromCart(c.Request().Context(), userID, input.ProductID, input.Quantity)
	if err != nil {
		return storeError(err)
	}
	if line == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, toCartItemResponse(line))
}

// Remove deletes the line of the product in the path.
func (h *CartHandler) Remove(c echo.Context) error {
	productID, err := pathID(c)
	if err != nil {
		return err
	}
	userID, _ := middleware.UserID(c)

	if err := h.store.RemoveFromCart(c.Request().Context(), userID, productID); err != nil {
		return storeError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// readCartChange defaults a missing quantity to 1.
func readCartChange(c echo.Context) (*cartChangeRequest, error) {
	var input cartChangeRequest
	if err := bindValid(c, &input); err != nil {
		return nil, err
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 1 {
		return nil, badRequest("quantity: Ensure this value is greater than or equal to 1.")
	}

	return &input, nil
}
