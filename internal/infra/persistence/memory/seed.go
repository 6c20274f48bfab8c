package memory

import (
	"log/slog"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	name, description, model, price, discount, promotion string
	quantity                                             int
}

var seedCatalog = []seedProduct{
	{"Ferrari 488 GTB", "Rosso Corsa 1:18 replica with opening doors and detailed engine bay.", "Ferrari", "129.99", "10", "Summer sale", 12},
	{"Ferrari SF90 Stradale", "Plug-in hybrid flagship in 1:18 scale.", "Ferrari", "149.99", "0", "", 5},
	{"Lamborghini Aventador SVJ", "Verde Mantis 1:18 with scissor doors.", "Lamborghini", "139.50", "15", "Limited edition", 4},
	{"Porsche 911 GT3 RS", "Weissach package, 1:18 resin model.", "Porsche", "99.00", "0", "", 20},
	{"BMW M4 GT3", "Race livery with sponsor decals.", "BMW", "59.90", "5", "", 15},
	{"Mercedes-AMG One", "Formula 1 derived hypercar, 1:18.", "Mercedes", "159.00", "0", "", 3},
	{"McLaren P1", "Volcano Orange 1:18 with working suspension.", "McLaren", "119.00", "20", "Clearance", 0},
	{"Bugatti Chiron Super Sport", "Two-tone carbon 1:18.", "Bugatti", "189.00", "0", "", 2},
}

// SeedCatalog adds a small diecast catalog, with placeholder images left to the client.
func (s *ShopStore) SeedCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seed := range seedCatalog {
		s.nextProduct++
		now := s.now()
		s.products[s.nextProduct] = &entity.Product{
			ID:                 s.nextProduct,
			Name:               seed.name,
			Description:        seed.description,
			Price:              decimal.RequireFromString(seed.price),
			Quantity:           seed.quantity,
			DiscountPercentage: decimal.RequireFromString(seed.discount),
			PromotionText:      seed.promotion,
			ModelName:          seed.model,
			Dimension:          "1:18",
			IsActive:           true,
			CreatedAt:          &now,
		}
	}

	s.logger.Info("Catalog seeded", slog.Int("products", len(seedCatalog)))
}
