package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	gateway service.Gateway
	auth    usecase.AuthUsecase
	logger  *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(gateway service.Gateway, auth usecase.AuthUsecase, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{gateway: gateway, auth: auth, logger: logger}
}

func (srv *orderService) List(ctx context.Context) ([]*entity.Order, error) {
	if !srv.auth.IsAuthenticated() {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	orders, err := srv.gateway.ListOrders(ctx)
	if err != nil {
		srv.logger.Warn("Failed to list orders", slog.Any("error", err))

		return nil, err
	}

	return orders, nil
}
