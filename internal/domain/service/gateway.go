package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Gateway is the remote shop backend: authentication, catalog, cart and orders over HTTP/JSON.
// Implementations return domain errors (AuthError, FetchError) and never hand out
// unvalidated payloads.
type Gateway interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, registration *entity.Registration) (*entity.User, error)
	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, username, password string) (*entity.Session, error)
	// CurrentUser returns the profile behind the current access token.
	CurrentUser(ctx context.Context) (*entity.User, error)

	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	// CreateProduct submits draft as JSON, or as multipart form-data when it carries images.
	CreateProduct(ctx context.Context, draft *entity.ProductDraft) (*entity.Product, error)
	// UpdateProduct submits draft as JSON, or as multipart form-data when it carries images.
	UpdateProduct(ctx context.Context, id int64, draft *entity.ProductDraft) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// GetCart returns the remote cart. A missing or malformed item list yields an empty cart.
	GetCart(ctx context.Context) (*entity.Cart, error)
	// AddToCart adds quantity units; the server may merge with an existing line or clamp to stock.
	AddToCart(ctx context.Context, productID int64, quantity int) (*entity.CartLine, error)
	// ReduceFromCart takes quantity units off an existing line.
	ReduceFromCart(ctx context.Context, productID int64, quantity int) (*entity.CartLine, error)
	RemoveFromCart(ctx context.Context, productID int64) error

	Checkout(ctx context.Context) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
}
