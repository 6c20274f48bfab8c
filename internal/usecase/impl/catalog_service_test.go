package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/qrcode"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalog(f *fixture) usecase.CatalogUsecase {
	return NewCatalogService(f.gateway, f.auth, qrcode.NewQRCodeService(128, "M", "https://shop.test"), f.logger)
}

func catalogProducts() []*entity.Product {
	lambo := newProduct(3, "Lamborghini Aventador", "Lamborghini", "120.00", "0", 2)
	lambo.Description = "Green supercar with scissor doors"
	ferrariSF := newProduct(4, "Ferrari SF90", "Ferrari", "140.00", "5", 1)
	ferrariSF.Description = "Hybrid hypercar"
	f1, p1 := ferrari, porsche

	return []*entity.Product{&f1, &p1, &lambo, &ferrariSF}
}

func stringPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestCatalogService_ListFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter entity.ProductFilter
		want   []int64
	}{
		{name: "no filter", filter: entity.ProductFilter{}, want: []int64{1, 2, 3, 4}},
		{name: "all models", filter: entity.ProductFilter{Model: "All"}, want: []int64{1, 2, 3, 4}},
		{name: "model", filter: entity.ProductFilter{Model: "Ferrari"}, want: []int64{1, 4}},
		{name: "query on name", filter: entity.ProductFilter{Query: "porsche"}, want: []int64{2}},
		{name: "query on description", filter: entity.ProductFilter{Query: "SCISSOR"}, want: []int64{3}},
		{name: "model and query", filter: entity.ProductFilter{Model: "Ferrari", Query: "hybrid"}, want: []int64{4}},
		{name: "no match", filter: entity.ProductFilter{Model: "Bugatti"}, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.ClearStrategyRefresh)
			f.gateway.EXPECT().ListProducts(mock.Anything).Return(catalogProducts(), nil).Once()

			products, err := newCatalog(f).List(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCatalogService_ListError(t *testing.T) {
	f := newFixture(t, config.ClearStrategyRefresh)
	f.gateway.EXPECT().ListProducts(mock.Anything).Return(nil, domainerrors.NewFetchError(500, "Failed to fetch products")).Once()

	_, err := newCatalog(f).List(context.Background(), entity.ProductFilter{})
	assert.Equal(t, "Failed to fetch products", domainerrors.MessageOf(err))
}

func TestCatalogService_Models(t *testing.T) {
	f := newFixture(t, config.ClearStrategyRefresh)
	models := newCatalog(f).Models()

	require.Len(t, models, 13)
	assert.Equal(t, "All", models[0])
	assert.Equal(t, "Bugatti", models[12])

	models[0] = "mutated"
	assert.Equal(t, "All", newCatalog(f).Models()[0])
}

func TestCatalogService_Related(t *testing.T) {
	f := newFixture(t, config.ClearStrategyRefresh)
	f.gateway.EXPECT().ListProducts(mock.Anything).Return(catalogProducts(), nil).Once()

	related, err := newCatalog(f).Related(context.Background(), &ferrari, 4)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, int64(4), related[0].ID)
}

func TestCatalogService_CreateValidation(t *testing.T) {
	price := decimal.NewFromInt(100)
	complete := func() *entity.ProductDraft {
		return &entity.ProductDraft{
			Name:        stringPtr("Ferrari 488"),
			Description: stringPtr("Red"),
			Price:       &price,
			Quantity:    intPtr(5),
			ModelName:   stringPtr("Ferrari"),
			Dimension:   stringPtr("1:18"),
			Images:      []entity.ImageUpload{{Filename: "a.jpg", Content: strings.NewReader("x")}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*entity.ProductDraft)
		message string
	}{
		{name: "missing name", mutate: func(d *entity.ProductDraft) { d.Name = nil }, message: "Please fill in all required fields"},
		{name: "blank model", mutate: func(d *entity.ProductDraft) { d.ModelName = stringPtr(" ") }, message: "Please fill in all required fields"},
		{name: "no images", mutate: func(d *entity.ProductDraft) { d.Images = nil }, message: "Please add at least one product image"},
		{name: "zero price", mutate: func(d *entity.ProductDraft) { zero := decimal.Zero; d.Price = &zero }, message: "Invalid input"},
		{name: "negative stock", mutate: func(d *entity.ProductDraft) { d.Quantity = intPtr(-1) }, message: "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.ClearStrategyRefresh)
			f.signIn(t, signedToken(t, 1, true), cartOf())

			draft := complete()
			tt.mutate(draft)

			_, err := newCatalog(f).Create(context.Background(), draft)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
			assert.Equal(t, tt.message, domainerrors.MessageOf(err))
			f.gateway.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
		})
	}

	t.Run("valid draft is submitted", func(t *testing.T) {
		f := newFixture(t, config.ClearStrategyRefresh)
		f.signIn(t, signedToken(t, 1, true), cartOf())

		draft := complete()
		f.gateway.EXPECT().CreateProduct(mock.Anything, draft).Return(&ferrari, nil).Once()

		product, err := newCatalog(f).Create(context.Background(), draft)
		require.NoError(t, err)
		assert.Equal(t, ferrari.ID, product.ID)
	})
}

func TestCatalogService_AdminOperationsRequireAdmin(t *testing.T) {
	f := newFixture(t, config.ClearStrategyRefresh)
	catalog := newCatalog(f)
	ctx := context.Background()

	assert.ErrorIs(t, catalog.Delete(ctx, 1), domainerrors.ErrNotAuthenticated)

	f.signIn(t, signedToken(t, 2, false), cartOf())
	assert.ErrorIs(t, catalog.Delete(ctx, 1), domainerrors.ErrForbidden)

	_, err := catalog.Update(ctx, 1, &entity.ProductDraft{Quantity: intPtr(3)})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_UpdateAndDelete(t *testing.T) {
	f := newFixture(t, config.ClearStrategyRefresh)
	f.signIn(t, signedToken(t, 1, true), cartOf())
	catalog := newCatalog(f)
	ctx := context.Background()

	draft := &entity.ProductDraft{Quantity: intPtr(7)}
	updated := ferrari
	updated.Quantity = 7
	f.gateway.EXPECT().UpdateProduct(mock.Anything, ferrari.ID, draft).Return(&updated, nil).Once()
	f.gateway.EXPECT().DeleteProduct(mock.Anything, porsche.ID).Return(domainerrors.NewFetchError(500, "Failed to delete product")).Once()

	product, err := catalog.Update(ctx, ferrari.ID, draft)
	require.NoError(t, err)
	assert.Equal(t, 7, product.Quantity)

	err = catalog.Delete(ctx, porsche.ID)
	assert.Equal(t, "Failed to delete product", domainerrors.MessageOf(err))
}

func TestCatalogService_UpdateRejectsOutOfRangeValues(t *testing.T) {
	f := newFixture(t, config.ClearStrategyRefresh)
	f.signIn(t, signedToken(t, 1, true), cartOf())
	catalog := newCatalog(f)

	over := decimal.NewFromInt(150)
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		draft   *entity.ProductDraft
		details string
	}{
		{name: "discount above 100", draft: &entity.ProductDraft{DiscountPercentage: &over}, details: "discount: lte=100"},
		{name: "negative price", draft: &entity.ProductDraft{Price: &negative}, details: "price: gt=0"},
		{name: "negative stock", draft: &entity.ProductDraft{Quantity: intPtr(-2)}, details: "quantity: gte=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Update(context.Background(), ferrari.ID, tt.draft)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

			var appErr *domainerrors.BaseError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.details, appErr.Details())
		})
	}

	f.gateway.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_ImageFor(t *testing.T) {
	f := newFixture(t, config.ClearStrategyRefresh)
	catalog := newCatalog(f)

	withImages := ferrari
	withImages.Images = []entity.ProductImage{{URL: "/media/a.jpg"}, {URL: "/media/b.jpg", IsPrimary: true}}
	assert.Equal(t, "/media/b.jpg", catalog.ImageFor(&withImages))

	withImages.Images = []entity.ProductImage{{URL: "/media/a.jpg"}}
	assert.Equal(t, "/media/a.jpg", catalog.ImageFor(&withImages))

	tests := map[string]string{
		"Audi":      "/images/porsche.jpg",
		"Toyota":    "/images/bmw.jpg",
		"Nissan":    "/images/ferrari.jpg",
		"Ford":      "/images/mercedes.jpg",
		"Chevrolet": "/images/mclaren.jpg",
		"Bugatti":   "/images/lambo.jpg",
		"Unknown":   "/images/ferrari.jpg",
	}
	for model, want := range tests {
		product := newProduct(9, "x", model, "1", "0", 1)
		assert.Equal(t, want, catalog.ImageFor(&product), model)
	}
}

func TestCatalogService_ShareQR(t *testing.T) {
	f := newFixture(t, config.ClearStrategyRefresh)
	catalog := newCatalog(f)

	png, err := catalog.ShareQR(&ferrari)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])

	text, err := catalog.ShareQRText(&ferrari)
	require.NoError(t, err)
	assert.NotEmpty(t, text)

	_, err = catalog.ShareQR(nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
