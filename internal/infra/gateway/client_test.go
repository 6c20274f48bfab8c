package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	session entity.Session
}

func (s staticTokens) Current() entity.Session {
	return s.session
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(server.URL+"/api/", server.Client(), staticTokens{session: entity.Session{AccessToken: token}}, logger)
}

const productJSON = `{"id":1,"name":"Ferrari 488","description":"Red","price":"100.00","quantity":5,
"discount_percentage":"10.00","product_model":"Ferrari","product_dimension":"1:18",
"images":[{"id":3,"image":"http://img/1.jpg","is_primary":true}],"created_at":"2024-01-15T10:00:00.123456Z"}`

func TestClient_SendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":1,"items":[]}`))
	}, "tok-123")

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	_, err := client.GetCart(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "/api/orders/cart/", gotPath)
}

func TestClient_OmitsAuthorizationWithoutToken(t *testing.T) {
	var hasAuth bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}, "")

	_, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alice", body["username"])
			assert.Equal(t, "secret", body["password"])
			_, _ = w.Write([]byte(`{"access":"a","refresh":"r"}`))
		}, "")

		session, err := client.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "a", session.AccessToken)
		assert.Equal(t, "r", session.RefreshToken)
	})

	t.Run("server detail becomes auth error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
		}, "")

		_, err := client.Login(context.Background(), "alice", "wrong")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrAuth)
		assert.Equal(t, "No active account found with the given credentials", domainerrors.MessageOf(err))
		assert.True(t, domainerrors.IsUnauthorized(err))
	})

	t.Run("generic message without detail", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`oops`))
		}, "")

		_, err := client.Login(context.Background(), "alice", "wrong")
		assert.Equal(t, "Login failed", domainerrors.MessageOf(err))
	})

	t.Run("missing access token is a shape error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"refresh":"r"}`))
		}, "")

		_, err := client.Login(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, domainerrors.ErrShape)
	})
}

func TestRegister(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "secret", body["password2"])
		assert.Equal(t, "Ada", body["first_name"])
		if body["username"] == "taken" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"username":["exists"]}`))

			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"username":"ada","email":"ada@example.com","first_name":"Ada"}`))
	}, "")

	user, err := client.Register(context.Background(), &entity.Registration{
		Username: "ada", Email: "ada@example.com", Password: "secret", Password2: "secret", FirstName: "Ada",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "ada", user.Username)

	_, err = client.Register(context.Background(), &entity.Registration{
		Username: "taken", Password: "secret", Password2: "secret", FirstName: "Ada",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAuth)
	assert.Equal(t, "Registration failed", domainerrors.MessageOf(err))
}

func TestCurrentUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/me/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":1,"username":"admin","is_staff":true}`))
	}, "tok")

	user, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestListProducts(t *testing.T) {
	t.Run("skips invalid entries", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[` + productJSON + `,{"name":"no id"},{"id":2,"name":"Porsche","price":50,"quantity":0}]`))
		}, "")

		products, err := client.ListProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)

		first := products[0]
		assert.True(t, decimal.RequireFromString("100").Equal(first.Price))
		assert.True(t, decimal.RequireFromString("90").Equal(first.DiscountedPrice()))
		assert.Equal(t, "Ferrari", first.ModelName)
		assert.True(t, first.IsActive)
		require.NotNil(t, first.CreatedAt)
		require.Len(t, first.Images, 1)
		assert.Equal(t, "http://img/1.jpg", first.Images[0].URL)

		assert.True(t, decimal.NewFromInt(50).Equal(products[1].Price))
	})

	t.Run("paginated envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"count":1,"results":[` + productJSON + `]}`))
		}, "")

		products, err := client.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("non-list is empty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`"nope"`))
		}, "")

		products, err := client.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("non-2xx", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, "")

		_, err := client.ListProducts(context.Background())
		assert.ErrorIs(t, err, domainerrors.ErrFetch)
		assert.Equal(t, "Failed to fetch products", domainerrors.MessageOf(err))
	})
}

func TestGetCart_LenientDecoding(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLines int
	}{
		{name: "missing items", body: `{"id":1}`, wantLines: 0},
		{name: "null items", body: `{"id":1,"items":null}`, wantLines: 0},
		{name: "items not a list", body: `{"id":1,"items":{"a":1}}`, wantLines: 0},
		{name: "empty list", body: `{"id":1,"items":[]}`, wantLines: 0},
		{name: "not an object", body: `[1,2,3]`, wantLines: 0},
		{name: "empty body", body: ``, wantLines: 0},
		{
			name: "skips bad lines",
			body: `{"id":1,"items":[{"id":9,"product":` + productJSON + `,"quantity":2},` +
				`{"id":10,"product":null,"quantity":1},{"id":11,"product":5,"quantity":1},` +
				`{"id":12,"product":` + productJSON + `,"quantity":0}],"total":"180.00"}`,
			wantLines: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}, "tok")

			cart, err := client.GetCart(context.Background())
			require.NoError(t, err)
			require.NotNil(t, cart.Lines)
			assert.Len(t, cart.Lines, tt.wantLines)
		})
	}
}

func TestGetCart_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "expired")

	_, err := client.GetCart(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch cart (401: Unauthorized)", domainerrors.MessageOf(err))
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestCartMutations(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/orders/cart/add/":
			var body addToCartWire
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, addToCartWire{ProductID: 1, Quantity: 2}, body)
			_, _ = w.Write([]byte(`{"id":9,"product":` + productJSON + `,"quantity":2}`))
		case "/api/orders/cart/reduce/":
			_, _ = w.Write([]byte(`{}`))
		case "/api/orders/cart/remove/1/":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not found."}`))
		}
	}, "tok")

	ctx := context.Background()
	line, err := client.AddToCart(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, line)
	assert.Equal(t, 2, line.Quantity)

	line, err = client.ReduceFromCart(ctx, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, line)

	require.NoError(t, client.RemoveFromCart(ctx, 1))

	err = client.RemoveFromCart(ctx, 2)
	assert.Equal(t, "Failed to delete cart item", domainerrors.MessageOf(err))

	assert.Equal(t, []string{
		"POST /api/orders/cart/add/",
		"POST /api/orders/cart/reduce/",
		"DELETE /api/orders/cart/remove/1/",
		"DELETE /api/orders/cart/remove/2/",
	}, calls)
}

func TestCreateProduct_JSONWithoutImages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ferrari 488", body["name"])
		assert.Equal(t, "100", body["price"])
		assert.NotContains(t, body, "description")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(productJSON))
	}, "tok")

	name := "Ferrari 488"
	price := decimal.NewFromInt(100)
	product, err := client.CreateProduct(context.Background(), &entity.ProductDraft{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}

func TestUpdateProduct_MultipartWithImages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/1/", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "5", r.FormValue("quantity"))
		assert.Equal(t, "Ferrari", r.FormValue("product_model"))
		files := r.MultipartForm.File[imagesFieldName]
		require.Len(t, files, 2)
		assert.Equal(t, "front.jpg", files[0].Filename)

		_, _ = w.Write([]byte(productJSON))
	}, "tok")

	quantity := 5
	model := "Ferrari"
	_, err := client.UpdateProduct(context.Background(), 1, &entity.ProductDraft{
		Quantity:  &quantity,
		ModelName: &model,
		Images: []entity.ImageUpload{
			{Filename: "/tmp/front.jpg", Content: strings.NewReader("jpeg-1")},
			{Filename: "back.jpg", Content: strings.NewReader("jpeg-2")},
		},
	})
	require.NoError(t, err)
}

func TestProductErrorMessages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"You do not have permission to perform this action."}`))
	}, "tok")

	ctx := context.Background()
	name := "x"

	// Create surfaces the server detail; the other writes report a generic message.
	_, err := client.CreateProduct(ctx, &entity.ProductDraft{Name: &name})
	assert.Equal(t, "You do not have permission to perform this action.", domainerrors.MessageOf(err))

	_, err = client.UpdateProduct(ctx, 1, &entity.ProductDraft{Name: &name})
	assert.Equal(t, "Failed to update product", domainerrors.MessageOf(err))

	err = client.DeleteProduct(ctx, 1)
	assert.Equal(t, "Failed to delete product", domainerrors.MessageOf(err))
	assert.ErrorIs(t, err, domainerrors.ErrFetch)
}

func TestCheckoutAndOrders(t *testing.T) {
	orderJSON := `{"id":4,"items":[{"id":1,"product":` + productJSON + `,"quantity":1}],"total":"90.00","status":"Processing","created_at":"2024-02-01T09:00:00Z"}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders/checkout/":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(orderJSON))
		case "/api/orders/":
			_, _ = w.Write([]byte(`[` + orderJSON + `,{"id":0}]`))
		}
	}, "tok")

	order, err := client.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.True(t, decimal.NewFromInt(90).Equal(order.Total))
	assert.Len(t, order.Lines, 1)
	assert.False(t, order.CreatedAt.IsZero())

	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(server.URL, nil, staticTokens{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := client.GetCart(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFetch)
	assert.Equal(t, "Failed to fetch cart", domainerrors.MessageOf(err))
}
