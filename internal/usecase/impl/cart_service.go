package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// User-facing cart notices.
const (
	msgSignInToAdd      = "Please sign in to add items to cart"
	msgSignInToManage   = "Please sign in to manage cart"
	msgSignInToCheckout = "Please sign in to checkout"
	msgLoadFailed       = "Failed to load cart: %s"
	msgAdded            = "%s added to cart!"
	msgAddFailed        = "Failed to add item to cart"
	msgRemoved          = "Item removed from cart"
	msgRemoveFailed     = "Failed to remove item from cart"
	msgUpdateFailed     = "Failed to update quantity"
	msgCleared          = "Cart cleared"
	msgClearFailed      = "Failed to clear cart"
	msgOrderPlaced      = "Order placed successfully!"
	msgCheckoutFailed   = "Failed to place order"
	msgUnknownError     = "Unknown error"
)

// cartService implements the CartUsecase interface.
//
// Gateway calls run outside mu. Each refresh takes a sequence number and the
// current epoch; its response is applied only if no newer refresh was applied
// and no login/logout happened in between.
type cartService struct {
	gateway       service.Gateway
	auth          usecase.AuthUsecase
	notifier      service.Notifier
	clearStrategy string
	logger        *slog.Logger

	mu       sync.RWMutex
	lines    []entity.CartLine
	inflight int
	seq      uint64
	applied  uint64
	epoch    uint64

	changes broadcaster[entity.CartState]
}

// NewCartService is the constructor for cartService. It subscribes once to auth events.
func NewCartService(
	cfg *config.Config,
	gateway service.Gateway,
	auth usecase.AuthUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	srv := &cartService{
		gateway:       gateway,
		auth:          auth,
		notifier:      notifier,
		clearStrategy: cfg.Cart.ClearStrategy,
		logger:        logger,
	}
	if srv.clearStrategy == "" {
		srv.clearStrategy = config.ClearStrategyRefresh
	}

	auth.Subscribe(srv.onAuthEvent)

	return srv
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// onAuthEvent resets on any identity change; a login then loads the new user's cart.
func (srv *cartService) onAuthEvent(ctx context.Context, event usecase.AuthEvent) {
	srv.mu.Lock()
	srv.epoch++
	srv.lines = nil
	srv.mu.Unlock()

	if !event.Authenticated {
		srv.log(ctx).Debug("Cart reset after logout")
		srv.publish(ctx)

		return
	}

	srv.Refresh(ctx)
}

func (srv *cartService) Refresh(ctx context.Context) entity.CartState {
	if !srv.auth.IsAuthenticated() {
		srv.mu.Lock()
		srv.lines = nil
		srv.mu.Unlock()
		srv.publish(ctx)

		return srv.State()
	}

	srv.mu.Lock()
	srv.seq++
	seq, epoch := srv.seq, srv.epoch
	srv.inflight++
	srv.mu.Unlock()
	srv.publish(ctx)

	cart, err := srv.gateway.GetCart(ctx)

	srv.mu.Lock()
	srv.inflight--
	stale := epoch != srv.epoch || seq < srv.applied
	if !stale {
		srv.applied = seq
		srv.lines = nil
		if err == nil {
			srv.lines = entity.SanitizeLines(cart.Lines)
		}
	}
	srv.mu.Unlock()

	switch {
	case stale:
		srv.log(ctx).Debug("Discarding stale cart response", slog.Uint64("seq", seq))
	case err != nil:
		srv.log(ctx).Error("Failed to load cart", slog.Any("error", err))
		srv.notifier.Notify(ctx, service.NotificationError, fmt.Sprintf(msgLoadFailed, failureText(err)))
	}

	srv.publish(ctx)

	return srv.State()
}

func (srv *cartService) AddToCart(ctx context.Context, product *entity.Product, quantity int) error {
	if !srv.auth.IsAuthenticated() {
		return srv.requireSignIn(ctx, msgSignInToAdd)
	}
	if !product.Valid() {
		srv.notifier.Notify(ctx, service.NotificationError, msgAddFailed)

		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("product is missing"))
	}
	if quantity < 1 {
		quantity = 1
	}

	if _, err := srv.gateway.AddToCart(ctx, product.ID, quantity); err != nil {
		srv.log(ctx).Error("Failed to add to cart",
			slog.Int64("product_id", product.ID),
			slog.Int("quantity", quantity),
			slog.Any("error", err),
		)
		srv.notifier.Notify(ctx, service.NotificationError, msgAddFailed)

		return err
	}

	srv.Refresh(ctx)
	srv.notifier.Notify(ctx, service.NotificationSuccess, fmt.Sprintf(msgAdded, product.Name))

	return nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	if !srv.auth.IsAuthenticated() {
		return srv.requireSignIn(ctx, msgSignInToManage)
	}
	if quantity < 1 {
		return srv.RemoveFromCart(ctx, productID)
	}

	// There is no set-quantity endpoint, so the target quantity is re-added.
	if _, err := srv.gateway.AddToCart(ctx, productID, quantity); err != nil {
		srv.log(ctx).Error("Failed to update quantity",
			slog.Int64("product_id", productID),
			slog.Int("quantity", quantity),
			slog.Any("error", err),
		)
		srv.notifier.Notify(ctx, service.NotificationError, msgUpdateFailed)

		return err
	}

	srv.Refresh(ctx)

	return nil
}

func (srv *cartService) ReduceQuantity(ctx context.Context, productID int64, quantity int) error {
	if !srv.auth.IsAuthenticated() {
		return srv.requireSignIn(ctx, msgSignInToManage)
	}
	if quantity < 1 {
		quantity = 1
	}

	line, err := srv.gateway.ReduceFromCart(ctx, productID, quantity)
	if err != nil {
		srv.log(ctx).Error("Failed to reduce quantity",
			slog.Int64("product_id", productID),
			slog.Int("quantity", quantity),
			slog.Any("error", err),
		)
		srv.notifier.Notify(ctx, service.NotificationError, msgUpdateFailed)

		return err
	}

	srv.Refresh(ctx)
	if line == nil {
		srv.notifier.Notify(ctx, service.NotificationSuccess, msgRemoved)
	}

	return nil
}

func (srv *cartService) RemoveFromCart(ctx context.Context, productID int64) error {
	if !srv.auth.IsAuthenticated() {
		return srv.requireSignIn(ctx, msgSignInToManage)
	}

	if err := srv.gateway.RemoveFromCart(ctx, productID); err != nil {
		srv.log(ctx).Error("Failed to remove from cart", slog.Int64("product_id", productID), slog.Any("error", err))
		srv.notifier.Notify(ctx, service.NotificationError, msgRemoveFailed)

		return err
	}

	srv.Refresh(ctx)
	srv.notifier.Notify(ctx, service.NotificationSuccess, msgRemoved)

	return nil
}

// ClearCart either only refreshes or removes every line first, depending on cart.clearStrategy.
func (srv *cartService) ClearCart(ctx context.Context) error {
	if !srv.auth.IsAuthenticated() {
		return srv.requireSignIn(ctx, msgSignInToManage)
	}

	if srv.clearStrategy == config.ClearStrategyRemoveEach {
		for _, line := range srv.State().Lines {
			if err := srv.gateway.RemoveFromCart(ctx, line.Product.ID); err != nil {
				srv.log(ctx).Error("Failed to clear cart", slog.Int64("product_id", line.Product.ID), slog.Any("error", err))
				srv.Refresh(ctx)
				srv.notifier.Notify(ctx, service.NotificationError, msgClearFailed)

				return err
			}
		}
	}

	srv.Refresh(ctx)
	srv.notifier.Notify(ctx, service.NotificationSuccess, msgCleared)

	return nil
}

func (srv *cartService) Checkout(ctx context.Context) (*entity.Order, error) {
	if !srv.auth.IsAuthenticated() {
		srv.notifier.Notify(ctx, service.NotificationInfo, msgSignInToCheckout)

		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	if srv.State().IsEmpty() {
		srv.notifier.Notify(ctx, service.NotificationInfo, domainerrors.ErrEmptyCart.Message())

		return nil, errors.WithStack(domainerrors.ErrEmptyCart)
	}

	order, err := srv.gateway.Checkout(ctx)
	if err != nil {
		srv.log(ctx).Error("Checkout failed", slog.Any("error", err))
		srv.notifier.Notify(ctx, service.NotificationError, msgCheckoutFailed)

		return nil, err
	}

	srv.Refresh(ctx)
	srv.log(ctx).Info("Order placed", slog.Int64("order_id", order.ID), slog.String("total", order.Total.StringFixed(2)))
	srv.notifier.Notify(ctx, service.NotificationSuccess, msgOrderPlaced)

	return order, nil
}

// State returns an empty snapshot whenever no session is present, whatever lines are held.
func (srv *cartService) State() entity.CartState {
	if !srv.auth.IsAuthenticated() {
		return entity.NewCartState(nil, entity.CartStatusUnauthenticated)
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	status := entity.CartStatusReady
	if srv.inflight > 0 {
		status = entity.CartStatusSyncing
	}

	return entity.NewCartState(srv.lines, status)
}

func (srv *cartService) ItemCount() int {
	return srv.State().ItemCount
}

func (srv *cartService) Total() decimal.Decimal {
	return srv.State().Total
}

func (srv *cartService) Subscribe(fn func(state entity.CartState)) func() {
	return srv.changes.subscribe(func(_ context.Context, state entity.CartState) {
		fn(state)
	})
}

func (srv *cartService) publish(ctx context.Context) {
	srv.changes.publish(ctx, srv.State())
}

func (srv *cartService) requireSignIn(ctx context.Context, message string) error {
	srv.notifier.Notify(ctx, service.NotificationError, message)

	return errors.WithStack(domainerrors.ErrNotAuthenticated)
}

func failureText(err error) string {
	if message := domainerrors.MessageOf(err); message != "" {
		return message
	}

	return msgUnknownError
}
