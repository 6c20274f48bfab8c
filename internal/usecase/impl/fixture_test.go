package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	infraauth "storefront/internal/infra/auth"
	"storefront/internal/infra/notification"
	"storefront/internal/infra/persistence/blobstore"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const (
	testUsername = "alice"
	testPassword = "secret-pass"
)

// fixture wires the real session, auth and cart services around a mocked gateway.
type fixture struct {
	gateway     *mockService.MockGateway
	credentials repository.CredentialRepository
	session     usecase.SessionUsecase
	auth        usecase.AuthUsecase
	cart        usecase.CartUsecase
	notices     *notification.Recorder
	logger      *slog.Logger
}

func newFixture(t *testing.T, clearStrategy string) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	credentials, err := blobstore.NewCredentialRepository(bucket, logger)
	require.NoError(t, err)

	gateway := mockService.NewMockGateway(t)
	session := NewSessionService(gateway, credentials, infraauth.NewClaimsDecoder(), logger)
	auth := NewAuthService(session, gateway, logger)
	notices := notification.NewRecorder()

	cfg := &config.Config{}
	cfg.Cart.ClearStrategy = clearStrategy

	return &fixture{
		gateway:     gateway,
		credentials: credentials,
		session:     session,
		auth:        auth,
		cart:        NewCartService(cfg, gateway, auth, notices, logger),
		notices:     notices,
		logger:      logger,
	}
}

// signIn logs in through the auth service; the cart loads initial as part of the login.
func (f *fixture) signIn(t *testing.T, token string, initial *entity.Cart) {
	t.Helper()

	f.gateway.EXPECT().Login(mock.Anything, testUsername, testPassword).
		Return(&entity.Session{AccessToken: token, RefreshToken: "refresh"}, nil).Once()
	f.gateway.EXPECT().GetCart(mock.Anything).Return(initial, nil).Once()

	require.NoError(t, f.auth.Login(context.Background(), testUsername, testPassword))
	f.notices.Reset()
}

func signedToken(t *testing.T, userID int64, staff bool) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID:   userID,
		Username: testUsername,
		IsStaff:  staff,
		Type:     service.TokenTypeAccess,
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	return signed
}

func newProduct(id int64, name, model, price, discount string, stock int) entity.Product {
	return entity.Product{
		ID:                 id,
		Name:               name,
		ModelName:          model,
		Price:              decimal.RequireFromString(price),
		DiscountPercentage: decimal.RequireFromString(discount),
		Quantity:           stock,
		IsActive:           true,
	}
}

var (
	ferrari = newProduct(1, "Ferrari 488 GTB 1:18", "Ferrari", "100.00", "10", 5)
	porsche = newProduct(2, "Porsche 911 GT3 1:18", "Porsche", "50.00", "0", 3)
)

func cartOf(lines ...entity.CartLine) *entity.Cart {
	return &entity.Cart{ID: 1, Lines: lines, Total: decimal.Zero}
}

func line(product entity.Product, quantity int) entity.CartLine {
	return entity.CartLine{ID: product.ID * 10, Product: product, Quantity: quantity}
}
