package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ShopStore {
	t.Helper()

	return NewShopStore(auth.NewBcryptHasher(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ptr[T any](v T) *T { return &v }

func addProduct(t *testing.T, store *ShopStore, name, price, discount string, stock int) *entity.Product {
	t.Helper()

	product, err := store.CreateProduct(context.Background(), &entity.ProductDraft{
		Name:               ptr(name),
		Price:              ptr(decimal.RequireFromString(price)),
		DiscountPercentage: ptr(decimal.RequireFromString(discount)),
		Quantity:           ptr(stock),
		ModelName:          ptr("Ferrari"),
	}, nil)
	require.NoError(t, err)

	return product
}

func TestShopStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, &entity.Registration{Username: "Alice", Email: "a@example.com", Password: "secret-pass"}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.IsAdmin)

	_, err = store.CreateUser(ctx, &entity.Registration{Username: "alice", Password: "other-pass"}, false)
	assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)

	authenticated, err := store.Authenticate(ctx, "alice", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)

	_, err = store.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)
	_, err = store.Authenticate(ctx, "nobody", "secret-pass")
	assert.ErrorIs(t, err, repository.ErrInvalidCredentials)

	found, err := store.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", found.Email)

	_, err = store.FindUserByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestShopStore_ProductCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, &entity.ProductDraft{
		Name:     ptr("Ferrari 488"),
		Price:    ptr(decimal.NewFromInt(100)),
		Quantity: ptr(5),
	}, []repository.StoredImage{{Filename: "a.jpg", URL: "/media/a.jpg"}, {Filename: "b.jpg", URL: "/media/b.jpg"}})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.True(t, created.DiscountPercentage.IsZero())
	require.Len(t, created.Images, 2)
	assert.True(t, created.Images[0].IsPrimary)
	assert.False(t, created.Images[1].IsPrimary)

	updated, err := store.UpdateProduct(ctx, created.ID, &entity.ProductDraft{Quantity: ptr(9)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Quantity)
	assert.Equal(t, "Ferrari 488", updated.Name)

	// Returned products are copies.
	updated.Images[0].URL = "mutated"
	found, err := store.FindProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/media/a.jpg", found.Images[0].URL)

	require.NoError(t, store.DeleteProduct(ctx, created.ID))
	_, err = store.FindProductByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.ErrorIs(t, store.DeleteProduct(ctx, created.ID), repository.ErrProductNotFound)

	_, err = store.UpdateProduct(ctx, created.ID, &entity.ProductDraft{}, nil)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestShopStore_AddToCartMergesAndClamps(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	product := addProduct(t, store, "Ferrari 488", "100", "10", 3)

	line, err := store.AddToCart(ctx, 1, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	line, err = store.AddToCart(ctx, 1, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)

	cart, err := store.Cart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "270.00", cart.Total.StringFixed(2))

	// Carts are per user.
	other, err := store.Cart(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
	assert.NotEqual(t, cart.ID, other.ID)
}

func TestShopStore_AddToCartRejects(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	soldOut := addProduct(t, store, "McLaren P1", "119", "0", 0)

	_, err := store.AddToCart(ctx, 1, 42, 1)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	_, err = store.AddToCart(ctx, 1, soldOut.ID, 1)
	assert.ErrorIs(t, err, repository.ErrOutOfStock)

	_, err = store.AddToCart(ctx, 1, soldOut.ID, 0)
	assert.Error(t, err)
}

func TestShopStore_ReduceAndRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	product := addProduct(t, store, "Porsche 911", "50", "0", 10)

	_, err := store.AddToCart(ctx, 1, product.ID, 4)
	require.NoError(t, err)

	line, err := store.ReduceFromCart(ctx, 1, product.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, 3, line.Quantity)

	line, err = store.ReduceFromCart(ctx, 1, product.ID, 5)
	require.NoError(t, err)
	assert.Nil(t, line)

	_, err = store.ReduceFromCart(ctx, 1, product.ID, 1)
	assert.ErrorIs(t, err, repository.ErrNotInCart)
	assert.ErrorIs(t, store.RemoveFromCart(ctx, 1, product.ID), repository.ErrNotInCart)

	_, err = store.AddToCart(ctx, 1, product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, store.RemoveFromCart(ctx, 1, product.ID))

	cart, err := store.Cart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestShopStore_DeleteProductDropsCartLines(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	product := addProduct(t, store, "Porsche 911", "50", "0", 10)

	_, err := store.AddToCart(ctx, 1, product.ID, 1)
	require.NoError(t, err)
	require.NoError(t, store.DeleteProduct(ctx, product.ID))

	cart, err := store.Cart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestShopStore_Checkout(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ferrari := addProduct(t, store, "Ferrari 488", "100", "10", 5)
	porsche := addProduct(t, store, "Porsche 911", "50", "0", 3)

	_, err := store.Checkout(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrCartEmpty)

	_, err = store.AddToCart(ctx, 1, ferrari.ID, 2)
	require.NoError(t, err)
	_, err = store.AddToCart(ctx, 1, porsche.ID, 1)
	require.NoError(t, err)

	order, err := store.Checkout(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "230.00", order.Total.StringFixed(2))
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.Len(t, order.Lines, 2)

	cart, err := store.Cart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	stock, err := store.FindProductByID(ctx, ferrari.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stock.Quantity)

	_, err = store.AddToCart(ctx, 1, porsche.ID, 1)
	require.NoError(t, err)
	second, err := store.Checkout(ctx, 1)
	require.NoError(t, err)

	orders, err := store.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, order.ID, orders[1].ID)

	none, err := store.ListOrders(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestShopStore_CheckoutIsAllOrNothing(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ferrari := addProduct(t, store, "Ferrari 488", "100", "0", 2)
	porsche := addProduct(t, store, "Porsche 911", "50", "0", 2)

	_, err := store.AddToCart(ctx, 1, ferrari.ID, 1)
	require.NoError(t, err)
	_, err = store.AddToCart(ctx, 1, porsche.ID, 2)
	require.NoError(t, err)

	// Someone else's stock change leaves too little for the second line.
	_, err = store.UpdateProduct(ctx, porsche.ID, &entity.ProductDraft{Quantity: ptr(1)}, nil)
	require.NoError(t, err)

	_, err = store.Checkout(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrOutOfStock)

	stock, err := store.FindProductByID(ctx, ferrari.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stock.Quantity)

	cart, err := store.Cart(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
}

func TestShopStore_ConcurrentAdds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	product := addProduct(t, store, "Ferrari 488", "100", "0", 1000)

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			_, err := store.AddToCart(ctx, 1, product.ID, 1)
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	cart, err := store.Cart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 50, cart.Lines[0].Quantity)
}

func TestNew_SeedsAndCreatesAdmin(t *testing.T) {
	cfg := &config.Config{DevGateway: &config.DevGatewayConfig{
		Seed:          true,
		AdminUsername: "admin",
		AdminPassword: "admin-pass",
	}}

	repo, err := New(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Hasher: auth.NewBcryptHasher(),
	})
	require.NoError(t, err)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, len(seedCatalog))

	admin, err := repo.Authenticate(context.Background(), "admin", "admin-pass")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}
