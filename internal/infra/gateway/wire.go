package gateway

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Wire formats of the shop backend. Money fields accept both "100.00" and 100.

type userWire struct {
	ID        int64  `json:"id"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

func (w *userWire) toEntity() *entity.User {
	return &entity.User{
		ID:        w.ID,
		Username:  w.Username,
		Email:     w.Email,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		IsAdmin:   w.IsStaff,
	}
}

type registrationWire struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginWire struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokensWire struct {
	Access  string `json:"access" validate:"required"`
	Refresh string `json:"refresh"`
}

type imageWire struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	IsPrimary bool   `json:"is_primary"`
}

type productWire struct {
	ID                 int64               `json:"id" validate:"gt=0"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Price              decimal.NullDecimal `json:"price"`
	Quantity           int                 `json:"quantity" validate:"gte=0"`
	DiscountPercentage decimal.NullDecimal `json:"discount_percentage"`
	PromotionText      string              `json:"promotion_text"`
	ProductModel       string              `json:"product_model"`
	ProductDimension   string              `json:"product_dimension"`
	IsActive           *bool               `json:"is_active"`
	Images             []imageWire         `json:"images"`
	CreatedAt          string              `json:"created_at"`
}

func (w *productWire) toEntity() entity.Product {
	product := entity.Product{
		ID:                 w.ID,
		Name:               w.Name,
		Description:        w.Description,
		Price:              decimal.Zero,
		Quantity:           w.Quantity,
		DiscountPercentage: decimal.Zero,
		PromotionText:      w.PromotionText,
		ModelName:          w.ProductModel,
		Dimension:          w.ProductDimension,
		IsActive:           w.IsActive == nil || *w.IsActive,
		CreatedAt:          parseTime(w.CreatedAt),
	}
	if w.Price.Valid {
		product.Price = w.Price.Decimal
	}
	if w.DiscountPercentage.Valid {
		product.DiscountPercentage = w.DiscountPercentage.Decimal
	}
	for _, img := range w.Images {
		if strings.TrimSpace(img.Image) == "" {
			continue
		}
		product.Images = append(product.Images, entity.ProductImage{
			ID:        img.ID,
			URL:       img.Image,
			IsPrimary: img.IsPrimary,
		})
	}

	return product
}

type cartItemWire struct {
	ID       int64        `json:"id"`
	Product  *productWire `json:"product"`
	Quantity int          `json:"quantity"`
}

type cartWire struct {
	ID    int64           `json:"id"`
	Items json.RawMessage `json:"items"`
	Total json.RawMessage `json:"total"`
}

type orderWire struct {
	ID        int64           `json:"id" validate:"gt=0"`
	Items     json.RawMessage `json:"items"`
	Total     json.RawMessage `json:"total"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type addToCartWire struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// draftWire carries only the fields a ProductDraft sets.
type draftWire struct {
	Name               *string          `json:"name,omitempty"`
	Description        *string          `json:"description,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	Quantity           *int             `json:"quantity,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	PromotionText      *string          `json:"promotion_text,omitempty"`
	ProductModel       *string          `json:"product_model,omitempty"`
	ProductDimension   *string          `json:"product_dimension,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
}

func newDraftWire(draft *entity.ProductDraft) draftWire {
	return draftWire{
		Name:               draft.Name,
		Description:        draft.Description,
		Price:              draft.Price,
		Quantity:           draft.Quantity,
		DiscountPercentage: draft.DiscountPercentage,
		PromotionText:      draft.PromotionText,
		ProductModel:       draft.ModelName,
		ProductDimension:   draft.Dimension,
		IsActive:           draft.IsActive,
	}
}

// formField is one multipart value, kept ordered for stable request bodies.
type formField struct {
	name  string
	value string
}

func (w draftWire) formFields() []formField {
	var fields []formField
	addString := func(name string, v *string) {
		if v != nil {
			fields = append(fields, formField{name: name, value: *v})
		}
	}
	addDecimal := func(name string, v *decimal.Decimal) {
		if v != nil {
			fields = append(fields, formField{name: name, value: v.String()})
		}
	}

	addString("name", w.Name)
	addString("description", w.Description)
	addDecimal("price", w.Price)
	if w.Quantity != nil {
		fields = append(fields, formField{name: "quantity", value: strconv.Itoa(*w.Quantity)})
	}
	addDecimal("discount_percentage", w.DiscountPercentage)
	addString("promotion_text", w.PromotionText)
	addString("product_model", w.ProductModel)
	addString("product_dimension", w.ProductDimension)
	if w.IsActive != nil {
		fields = append(fields, formField{name: "is_active", value: strconv.FormatBool(*w.IsActive)})
	}

	return fields
}

// parseDecimal accepts a JSON string or number; anything else is zero.
func parseDecimal(raw json.RawMessage) decimal.Decimal {
	var value decimal.NullDecimal
	if err := json.Unmarshal(bytes.TrimSpace(raw), &value); err != nil || !value.Valid {
		return decimal.Zero
	}

	return value.Decimal
}

func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}
