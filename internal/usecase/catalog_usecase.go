package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase reads and administers products. Errors carry the gateway's message.
type CatalogUsecase interface {
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	// Models returns the brand filter options, "All" first.
	Models() []string
	Get(ctx context.Context, id int64) (*entity.Product, error)
	// Related returns up to limit other products of the same model.
	Related(ctx context.Context, product *entity.Product, limit int) ([]*entity.Product, error)

	Create(ctx context.Context, draft *entity.ProductDraft) (*entity.Product, error)
	Update(ctx context.Context, id int64, draft *entity.ProductDraft) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error

	// ImageFor returns the image to show for product, falling back to a brand placeholder.
	ImageFor(product *entity.Product) string
	// ShareQR renders a PNG QR code linking to the product page.
	ShareQR(product *entity.Product) ([]byte, error)
	// ShareQRText renders the same code for a terminal.
	ShareQRText(product *entity.Product) (string, error)
}
