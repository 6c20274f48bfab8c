package entity

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Product is a read projection of a catalog item. The client never mutates one in place;
// changes are submitted as a ProductDraft.
type Product struct {
	ID                 int64           // Server identifier, always > 0 for a valid product.
	Name               string          // Display name, e.g. "Ferrari 488 GTB 1:18 Scale".
	Description        string          // Long description.
	Price              decimal.Decimal // Undiscounted unit price.
	Quantity           int             // Units in stock.
	DiscountPercentage decimal.Decimal // 0..100.
	PromotionText      string          // Optional marketing banner.
	ModelName          string          // Brand, used for filtering (Ferrari, Porsche, ...).
	Dimension          string          // Scale, e.g. "1:18".
	Images             []ProductImage  // Uploaded images, possibly empty.
	IsActive           bool            // Whether the product is listed.
	CreatedAt          *time.Time      // Creation time when the server reports it.
}

// ProductImage is one uploaded image of a product.
type ProductImage struct {
	ID        int64
	URL       string
	IsPrimary bool
}

// Valid reports whether p identifies a real server-side product.
func (p *Product) Valid() bool {
	return p != nil && p.ID > 0
}

// DiscountedPrice returns Price × (1 − DiscountPercentage/100).
func (p *Product) DiscountedPrice() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(p.DiscountPercentage.Div(hundred))

	return p.Price.Mul(factor)
}

// HasDiscount reports whether a positive discount applies.
func (p *Product) HasDiscount() bool {
	return p.DiscountPercentage.IsPositive()
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// PrimaryImage returns the image flagged primary, else the first image.
func (p *Product) PrimaryImage() (ProductImage, bool) {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img, true
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0], true
	}

	return ProductImage{}, false
}

// ProductDraft is a change-set for creating or updating a product.
// Nil fields are left out of the request, which gives partial updates.
type ProductDraft struct {
	Name               *string
	Description        *string
	Price              *decimal.Decimal
	Quantity           *int
	DiscountPercentage *decimal.Decimal
	PromotionText      *string
	ModelName          *string
	Dimension          *string
	IsActive           *bool
	Images             []ImageUpload
}

// ImageUpload is one file attached to a ProductDraft. Content is read once.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// ProductFilter narrows a product listing on the client side.
type ProductFilter struct {
	Model string // "" or "All" matches every model.
	Query string // Case-insensitive substring of name or description.
}
