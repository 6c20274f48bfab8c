package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors of the development gateway's shop store.
var (
	ErrUserAlreadyExists  = errors.New("a user with that username already exists")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOutOfStock         = errors.New("product is out of stock")
	ErrNotInCart          = errors.New("product is not in the cart")
	ErrCartEmpty          = errors.New("cart is empty")
)

// StoredImage is an uploaded product image before it is given an id.
type StoredImage struct {
	Filename string
	URL      string
}

// ShopRepository is the backing store of the development gateway.
type ShopRepository interface {
	CreateUser(ctx context.Context, registration *entity.Registration, isStaff bool) (*entity.User, error)
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)

	ListProducts(ctx context.Context) ([]*entity.Product, error)
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, draft *entity.ProductDraft, images []StoredImage) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, draft *entity.ProductDraft, images []StoredImage) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// Cart returns the user's cart, creating an empty one on first access.
	Cart(ctx context.Context, userID int64) (*entity.Cart, error)
	// AddToCart merges with an existing line and clamps the line quantity to stock.
	AddToCart(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error)
	// ReduceFromCart lowers a line; a line reaching zero is removed.
	ReduceFromCart(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error)
	RemoveFromCart(ctx context.Context, userID, productID int64) error

	// Checkout turns the cart into an order, decrements stock and empties the cart.
	Checkout(ctx context.Context, userID int64) (*entity.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]*entity.Order, error)
}
