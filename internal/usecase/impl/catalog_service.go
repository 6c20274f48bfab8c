package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// modelAll matches every product in a filter.
const modelAll = "All"

var productModels = []string{
	modelAll, "Ferrari", "Lamborghini", "Porsche", "BMW", "Mercedes", "McLaren",
	"Audi", "Toyota", "Nissan", "Ford", "Chevrolet", "Bugatti",
}

// Placeholder images for products without uploads, keyed by model.
const (
	imageFerrari  = "/images/ferrari.jpg"
	imageLambo    = "/images/lambo.jpg"
	imagePorsche  = "/images/porsche.jpg"
	imageBMW      = "/images/bmw.jpg"
	imageMercedes = "/images/mercedes.jpg"
	imageMcLaren  = "/images/mclaren.jpg"
)

var fallbackImages = map[string]string{
	"ferrari":     imageFerrari,
	"lamborghini": imageLambo,
	"porsche":     imagePorsche,
	"bmw":         imageBMW,
	"mercedes":    imageMercedes,
	"mclaren":     imageMcLaren,
	"audi":        imagePorsche,
	"toyota":      imageBMW,
	"nissan":      imageFerrari,
	"ford":        imageMercedes,
	"chevrolet":   imageMcLaren,
	"bugatti":     imageLambo,
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	gateway  service.Gateway
	auth     usecase.AuthUsecase
	qrcode   service.QRCodeService
	validate *validator.CustomValidator
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	gateway service.Gateway,
	auth usecase.AuthUsecase,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		gateway:  gateway,
		auth:     auth,
		qrcode:   qrcode,
		validate: validator.New(),
		logger:   logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if matches(product, filter) {
			filtered = append(filtered, product)
		}
	}

	srv.log(ctx).Debug("Listed products",
		slog.Int("total", len(products)),
		slog.Int("matched", len(filtered)),
		slog.String("model", filter.Model),
		slog.String("query", filter.Query),
	)

	return filtered, nil
}

func matches(product *entity.Product, filter entity.ProductFilter) bool {
	model := strings.TrimSpace(filter.Model)
	if model != "" && model != modelAll && !strings.EqualFold(product.ModelName, model) {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query)
}

func (srv *catalogService) Models() []string {
	return append([]string(nil), productModels...)
}

func (srv *catalogService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("product id must be positive"))
	}

	return srv.gateway.GetProduct(ctx, id)
}

func (srv *catalogService) Related(ctx context.Context, product *entity.Product, limit int) ([]*entity.Product, error) {
	if !product.Valid() || limit <= 0 {
		return []*entity.Product{}, nil
	}

	products, err := srv.List(ctx, entity.ProductFilter{Model: product.ModelName})
	if err != nil {
		return nil, err
	}

	related := make([]*entity.Product, 0, limit)
	for _, candidate := range products {
		if candidate.ID == product.ID {
			continue
		}
		related = append(related, candidate)
		if len(related) == limit {
			break
		}
	}

	return related, nil
}

func (srv *catalogService) Create(ctx context.Context, draft *entity.ProductDraft) (*entity.Product, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}
	if err := srv.validateCreate(draft); err != nil {
		return nil, err
	}

	product, err := srv.gateway.CreateProduct(ctx, draft)
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Int64("product_id", product.ID))

	return product, nil
}

func (srv *catalogService) Update(ctx context.Context, id int64, draft *entity.ProductDraft) (*entity.Product, error) {
	if err := srv.requireAdmin(); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("product id must be positive"))
	}
	if err := srv.validateValues(draft); err != nil {
		return nil, err
	}

	product, err := srv.gateway.UpdateProduct(ctx, id, draft)
	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Int64("product_id", id), slog.Any("error", err))

		return nil, err
	}

	return product, nil
}

func (srv *catalogService) Delete(ctx context.Context, id int64) error {
	if err := srv.requireAdmin(); err != nil {
		return err
	}

	if err := srv.gateway.DeleteProduct(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to delete product", slog.Int64("product_id", id), slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *catalogService) ImageFor(product *entity.Product) string {
	if product == nil {
		return imageFerrari
	}
	if image, ok := product.PrimaryImage(); ok {
		return image.URL
	}
	if image, ok := fallbackImages[strings.ToLower(strings.TrimSpace(product.ModelName))]; ok {
		return image
	}

	return imageFerrari
}

func (srv *catalogService) ShareQR(product *entity.Product) ([]byte, error) {
	if !product.Valid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("product is missing"))
	}

	return srv.qrcode.GenerateProductQR(product.ID)
}

func (srv *catalogService) ShareQRText(product *entity.Product) (string, error) {
	if !product.Valid() {
		return "", errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("product is missing"))
	}

	return srv.qrcode.GenerateProductQRText(product.ID)
}

// requireAdmin fails fast on the client; the gateway enforces the same rule.
func (srv *catalogService) requireAdmin() error {
	if !srv.auth.IsAuthenticated() {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	if user, known := srv.auth.User(); known && !user.IsAdmin {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

// productCreateInput lists what the product form requires on create, including one image.
type productCreateInput struct {
	Name        *string              `json:"name" validate:"required,notblank"`
	Description *string              `json:"description" validate:"required,notblank"`
	ModelName   *string              `json:"model" validate:"required,notblank"`
	Dimension   *string              `json:"dimension" validate:"required,notblank"`
	Price       *decimal.Decimal     `json:"price" validate:"required"`
	Quantity    *int                 `json:"quantity" validate:"required"`
	Images      []entity.ImageUpload `json:"images" validate:"min=1"`
}

// productValuesInput holds the ranges checked on whichever fields a draft sets.
type productValuesInput struct {
	Price              *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Quantity           *int             `json:"quantity" validate:"omitempty,gte=0"`
	DiscountPercentage *decimal.Decimal `json:"discount" validate:"omitempty,gte=0,lte=100"`
}

func (srv *catalogService) validateCreate(draft *entity.ProductDraft) error {
	if draft == nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("product draft is missing"))
	}

	err := srv.validate.Validate(&productCreateInput{
		Name:        draft.Name,
		Description: draft.Description,
		ModelName:   draft.ModelName,
		Dimension:   draft.Dimension,
		Price:       draft.Price,
		Quantity:    draft.Quantity,
		Images:      draft.Images,
	})
	if err != nil {
		missing := slices.DeleteFunc(validator.Fields(err), func(field string) bool { return field == "images" })
		if len(missing) > 0 {
			slices.Sort(missing)

			return errors.WithStack(domainerrors.NewBaseError(
				domainerrors.ErrInvalidInput.HTTPCode(),
				domainerrors.ErrInvalidInput.ErrorCode(),
				"Please fill in all required fields",
				"missing: "+strings.Join(missing, ", "),
			))
		}

		return errors.WithStack(domainerrors.NewBaseError(
			domainerrors.ErrInvalidInput.HTTPCode(),
			domainerrors.ErrInvalidInput.ErrorCode(),
			"Please add at least one product image",
			"",
		))
	}

	return srv.validateValues(draft)
}

func (srv *catalogService) validateValues(draft *entity.ProductDraft) error {
	if draft == nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("product draft is missing"))
	}

	err := srv.validate.Validate(&productValuesInput{
		Price:              draft.Price,
		Quantity:           draft.Quantity,
		DiscountPercentage: draft.DiscountPercentage,
	})
	if err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(validator.Describe(err)))
	}

	return nil
}
