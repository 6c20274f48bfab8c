// Package handler contains the HTTP handlers of the development gateway.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/middleware"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for account handlers.
type AuthHandler struct {
	store    repository.ShopRepository
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(store repository.ShopRepository, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{store: store, tokenSvc: tokenSvc, logger: logger}
}

// Register creates a customer account. It does not sign in.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := bindValid(c, &input); err != nil {
		return err
	}

	user, err := h.store.CreateUser(c.Request().Context(), &entity.Registration{
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		Password2: input.Password2,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}, false)
	if err != nil {
		return storeError(err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login issues an access/refresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := bindValid(c, &input); err != nil {
		return err
	}

	user, err := h.store.Authenticate(c.Request().Context(), input.Username, input.Password)
	if err != nil {
		return storeError(err)
	}

	access, refresh, err := h.tokenSvc.GenerateTokens(user)
	if err != nil {
		return errors.Wrap(err, "failed to issue tokens")
	}

	return c.JSON(http.StatusOK, tokensResponse{Access: access, Refresh: refresh})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := middleware.UserID(c)

	user, err := h.store.FindUserByID(c.Request().Context(), userID)
	if err != nil {
		return storeError(err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bindValid binds the request body and runs the echo validator on it.
func bindValid(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return badRequest("Malformed request body")
	}
	if err := c.Validate(v); err != nil {
		return badRequest(validator.Describe(err))
	}

	return nil
}
