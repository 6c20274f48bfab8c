package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// imagesField is the multipart field product images are uploaded under.
const imagesField = "images_upload"

// productRequest is the JSON or form body of a product write; absent fields stay nil.
type productRequest struct {
	Name               *string          `json:"name" validate:"omitempty,notblank"`
	Description        *string          `json:"description"`
	Price              *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Quantity           *int             `json:"quantity" validate:"omitempty,gte=0"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage" validate:"omitempty,gte=0,lte=100"`
	PromotionText      *string          `json:"promotion_text"`
	ProductModel       *string          `json:"product_model"`
	ProductDimension   *string          `json:"product_dimension"`
	IsActive           *bool            `json:"is_active"`
}

// productCreateRequest holds the fields a new product must carry.
type productCreateRequest struct {
	Name     *string          `json:"name" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Quantity *int             `json:"quantity" validate:"required"`
}

func (r *productRequest) validate(c echo.Context, create bool) error {
	if create {
		required := &productCreateRequest{Name: r.Name, Price: r.Price, Quantity: r.Quantity}
		if err := c.Validate(required); err != nil {
			return badRequest(validator.Describe(err))
		}
	}
	if err := c.Validate(r); err != nil {
		return badRequest(validator.Describe(err))
	}

	return nil
}

func (r *productRequest) toDraft() *entity.ProductDraft {
	return &entity.ProductDraft{
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price,
		Quantity:           r.Quantity,
		DiscountPercentage: r.DiscountPercentage,
		PromotionText:      r.PromotionText,
		ModelName:          r.ProductModel,
		Dimension:          r.ProductDimension,
		IsActive:           r.IsActive,
	}
}

// ProductHandler serves the catalog. Writes are staff only; the router enforces that.
type ProductHandler struct {
	store  repository.ShopRepository
	media  repository.MediaRepository
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(store repository.ShopRepository, media repository.MediaRepository, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{store: store, media: media, logger: logger}
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.store.ListProducts(c.Request().Context())
	if err != nil {
		return storeError(err)
	}

	resp := make([]productResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.store.FindProductByID(c.Request().Context(), id)
	if err != nil {
		return storeError(err)
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) Create(c echo.Context) error {
	input, images, err := h.readRequest(c)
	if err != nil {
		return err
	}
	if err := input.validate(c, true); err != nil {
		return err
	}

	product, err := h.store.CreateProduct(c.Request().Context(), input.toDraft(), images)
	if err != nil {
		return storeError(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Product created",
		slog.Int64("product_id", product.ID),
		slog.Int("images", len(images)),
	)

	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update applies a partial change for both PUT and PATCH.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, images, err := h.readRequest(c)
	if err != nil {
		return err
	}
	if err := input.validate(c, false); err != nil {
		return err
	}

	product, err := h.store.UpdateProduct(c.Request().Context(), id, input.toDraft(), images)
	if err != nil {
		return storeError(err)
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.store.DeleteProduct(c.Request().Context(), id); err != nil {
		return storeError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Media streams an uploaded image.
func (h *ProductHandler) Media(c echo.Context) error {
	r, contentType, err := h.media.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return storeError(err)
	}
	defer r.Close()

	return c.Stream(http.StatusOK, contentType, r)
}

// readRequest accepts a JSON body or a multipart form with files under images_upload.
func (h *ProductHandler) readRequest(c echo.Context) (*productRequest, []repository.StoredImage, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		var input productRequest
		if err := c.Bind(&input); err != nil {
			return nil, nil, badRequest("Malformed request body")
		}

		return &input, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, badRequest("Malformed multipart form")
	}

	input, err := requestFromForm(form.Value)
	if err != nil {
		return nil, nil, err
	}

	images := make([]repository.StoredImage, 0, len(form.File[imagesField]))
	for _, header := range form.File[imagesField] {
		stored, err := h.saveUpload(c, header)
		if err != nil {
			return nil, nil, err
		}
		images = append(images, stored)
	}

	return input, images, nil
}

func (h *ProductHandler) saveUpload(c echo.Context, header *multipart.FileHeader) (repository.StoredImage, error) {
	file, err := header.Open()
	if err != nil {
		return repository.StoredImage{}, errors.Wrap(err, "open upload")
	}
	defer file.Close()

	stored, err := h.media.Save(c.Request().Context(), header.Filename, file)
	if err != nil {
		return repository.StoredImage{}, errors.Wrap(err, "store upload")
	}

	return stored, nil
}

func requestFromForm(values map[string][]string) (*productRequest, error) {
	input := &productRequest{}
	value := func(name string) (string, bool) {
		v, ok := values[name]
		if !ok || len(v) == 0 {
			return "", false
		}

		return v[0], true
	}

	for name, target := range map[string]**string{
		"name":              &input.Name,
		"description":       &input.Description,
		"promotion_text":    &input.PromotionText,
		"product_model":     &input.ProductModel,
		"product_dimension": &input.ProductDimension,
	} {
		if v, ok := value(name); ok {
			*target = &v
		}
	}

	for name, target := range map[string]**decimal.Decimal{
		"price":               &input.Price,
		"discount_percentage": &input.DiscountPercentage,
	} {
		v, ok := value(name)
		if !ok {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, badRequest(name + ": a valid number is required")
		}
		*target = &d
	}

	if v, ok := value("quantity"); ok {
		quantity, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, badRequest("quantity: a valid integer is required")
		}
		input.Quantity = &quantity
	}
	if v, ok := value("is_active"); ok {
		active, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, badRequest("is_active: must be a valid boolean")
		}
		input.IsActive = &active
	}

	return input, nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not found.")
	}

	return id, nil
}
