package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase lists the signed-in user's orders.
type OrderUsecase interface {
	List(ctx context.Context) ([]*entity.Order, error)
}
