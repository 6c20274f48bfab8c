package handler

import (
	"net/http"

	"storefront/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// storeError translates a shop store error into the status and detail the backend would send.
// Unknown errors pass through to the error handler as internal errors.
func storeError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserAlreadyExists):
		return echo.NewHTTPError(http.StatusBadRequest, "A user with that username already exists.")
	case errors.Is(err, repository.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "No active account found with the given credentials")
	case errors.Is(err, repository.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	case errors.Is(err, repository.ErrProductNotFound), errors.Is(err, repository.ErrMediaNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found.")
	case errors.Is(err, repository.ErrOutOfStock):
		return echo.NewHTTPError(http.StatusBadRequest, "Not enough stock available")
	case errors.Is(err, repository.ErrNotInCart):
		return echo.NewHTTPError(http.StatusNotFound, "Item not in cart")
	case errors.Is(err, repository.ErrCartEmpty):
		return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
	default:
		return errors.WithStack(err)
	}
}

func badRequest(detail string) error {
	return echo.NewHTTPError(http.StatusBadRequest, detail)
}
