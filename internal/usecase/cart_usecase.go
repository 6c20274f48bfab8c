package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartUsecase is the single source of truth for the signed-in user's cart.
// Every mutation is followed by a full refresh; failures become notifications.
// Returned errors only inform callers such as the CLI about the outcome.
type CartUsecase interface {
	// Refresh re-reads the remote cart. It never fails: errors leave an empty cart.
	Refresh(ctx context.Context) entity.CartState
	// AddToCart adds quantity units of product; quantity < 1 means 1.
	AddToCart(ctx context.Context, product *entity.Product, quantity int) error
	// UpdateQuantity sets a line to quantity; quantity < 1 removes the line.
	UpdateQuantity(ctx context.Context, productID int64, quantity int) error
	// ReduceQuantity takes quantity units off a line; quantity < 1 means 1.
	// A line that reaches zero is removed by the gateway.
	ReduceQuantity(ctx context.Context, productID int64, quantity int) error
	RemoveFromCart(ctx context.Context, productID int64) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) (*entity.Order, error)

	State() entity.CartState
	ItemCount() int
	Total() decimal.Decimal

	// Subscribe registers fn for state changes.
	Subscribe(fn func(state entity.CartState)) (unsubscribe func())
}
