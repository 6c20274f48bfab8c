package handler

import (
	"time"

	"storefront/internal/domain/entity"
)

// Wire formats of the shop backend. Money is rendered as a two-decimal string, e.g. "129.99".

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsStaff:   user.IsAdmin,
	}
}

type tokensResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type imageResponse struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	IsPrimary bool   `json:"is_primary"`
}

type productResponse struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              string          `json:"price"`
	Quantity           int             `json:"quantity"`
	DiscountPercentage string          `json:"discount_percentage"`
	PromotionText      string          `json:"promotion_text"`
	ProductModel       string          `json:"product_model"`
	ProductDimension   string          `json:"product_dimension"`
	IsActive           bool            `json:"is_active"`
	Images             []imageResponse `json:"images"`
	CreatedAt          string          `json:"created_at,omitempty"`
}

func toProductResponse(product *entity.Product) productResponse {
	resp := productResponse{
		ID:                 product.ID,
		Name:               product.Name,
		Description:        product.Description,
		Price:              product.Price.StringFixed(2),
		Quantity:           product.Quantity,
		DiscountPercentage: product.DiscountPercentage.StringFixed(2),
		PromotionText:      product.PromotionText,
		ProductModel:       product.ModelName,
		ProductDimension:   product.Dimension,
		IsActive:           product.IsActive,
		Images:             make([]imageResponse, 0, len(product.Images)),
	}
	for _, img := range product.Images {
		resp.Images = append(resp.Images, imageResponse{ID: img.ID, Image: img.URL, IsPrimary: img.IsPrimary})
	}
	if product.CreatedAt != nil {
		resp.CreatedAt = product.CreatedAt.UTC().Format(time.RFC3339)
	}

	return resp
}

type cartItemResponse struct {
	ID       int64           `json:"id"`
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

func toCartItems(lines []entity.CartLine) []cartItemResponse {
	items := make([]cartItemResponse, 0, len(lines))
	for i := range lines {
		items = append(items, toCartItemResponse(&lines[i]))
	}

	return items
}

func toCartItemResponse(line *entity.CartLine) cartItemResponse {
	return cartItemResponse{ID: line.ID, Product: toProductResponse(&line.Product), Quantity: line.Quantity}
}

type cartResponse struct {
	ID    int64              `json:"id"`
	Items []cartItemResponse `json:"items"`
	Total string             `json:"total"`
}

type orderResponse struct {
	ID        int64              `json:"id"`
	Items     []cartItemResponse `json:"items"`
	Total     string             `json:"total"`
	Status    string             `json:"status"`
	CreatedAt string             `json:"created_at"`
}

func toOrderResponse(order *entity.Order) orderResponse {
	return orderResponse{
		ID:        order.ID,
		Items:     toCartItems(order.Lines),
		Total:     order.Total.StringFixed(2),
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt.UTC().Format(time.RFC3339),
	}
}
