// Package router contains the route table of the development gateway.
package router

import (
	"storefront/internal/delivery/devgateway/router/handler"
	"storefront/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix is the path every gateway route lives under; the client's base URL ends with it.
const APIPrefix = "/api"

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes mirrors the shop backend's URL layout, trailing slashes included.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/media/*", r.productHandler.Media)

	api := e.Group(APIPrefix)

	// Account routes
	api.POST("/register/", r.authHandler.Register)
	api.POST("/login/", r.authHandler.Login)
	api.GET("/user/me/", r.authHandler.Me, r.authMiddleware.Authenticate)

	// Catalog: public reads, staff writes
	api.GET("/products/", r.productHandler.List)
	api.GET("/products/:id/", r.productHandler.Get)
	staff := api.Group("/products", r.authMiddleware.Authenticate, r.authMiddleware.RequireStaff)
	{
		staff.POST("/", r.productHandler.Create)
		staff.PUT("/:id/", r.productHandler.Update)
		staff.PATCH("/:id/", r.productHandler.Update)
		staff.DELETE("/:id/", r.productHandler.Delete)
	}

	// Cart and orders require a signed-in user
	orders := api.Group("/orders", r.authMiddleware.Authenticate)
	{
		orders.GET("/", r.orderHandler.List)
		orders.POST("/checkout/", r.orderHandler.Checkout)
		orders.GET("/cart/", r.cartHandler.Get)
		orders.POST("/cart/add/", r.cartHandler.Add)
		orders.POST("/cart/reduce/", r.cartHandler.Reduce)
		orders.DELETE("/cart/remove/:id/", r.cartHandler.Remove)
	}
}
