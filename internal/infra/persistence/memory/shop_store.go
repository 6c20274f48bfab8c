// Package memory contains the in-memory persistence used by the development gateway.
// Nothing survives a restart.
package memory

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Params holds dependencies for the shop store, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

type userRecord struct {
	user         entity.User
	passwordHash string
}

type cartItem struct {
	id        int64
	productID int64
	quantity  int
}

type cartRecord struct {
	id    int64
	items []cartItem
}

// ShopStore implements repository.ShopRepository. It is safe for concurrent use.
type ShopStore struct {
	hasher service.PasswordHasher
	logger *slog.Logger
	now    func() time.Time

	mu          sync.RWMutex
	users       map[int64]*userRecord
	usernames   map[string]int64
	products    map[int64]*entity.Product
	carts       map[int64]*cartRecord
	orders      map[int64][]*entity.Order
	nextUser    int64
	nextProduct int64
	nextImage   int64
	nextCart    int64
	nextItem    int64
	nextOrder   int64
}

var _ repository.ShopRepository = (*ShopStore)(nil)

// New creates the store from configuration, seeding the catalog and the admin account when asked to.
func New(params Params) (repository.ShopRepository, error) {
	store := NewShopStore(params.Hasher, params.Logger)

	devCfg := params.Config.DevGateway
	if devCfg == nil {
		return store, nil
	}

	if devCfg.Seed {
		store.SeedCatalog()
	}
	if devCfg.AdminUsername != "" {
		_, err := store.CreateUser(context.Background(), &entity.Registration{
			Username: devCfg.AdminUsername,
			Password: devCfg.AdminPassword,
		}, true)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create admin account")
		}
		params.Logger.Info("Admin account created", slog.String("username", devCfg.AdminUsername))
	}

	return store, nil
}

// NewShopStore returns an empty store.
func NewShopStore(hasher service.PasswordHasher, logger *slog.Logger) *ShopStore {
	return &ShopStore{
		hasher:    hasher,
		logger:    logger,
		now:       time.Now,
		users:     make(map[int64]*userRecord),
		usernames: make(map[string]int64),
		products:  make(map[int64]*entity.Product),
		carts:     make(map[int64]*cartRecord),
		orders:    make(map[int64][]*entity.Order),
	}
}

func (s *ShopStore) CreateUser(ctx context.Context, registration *entity.Registration, isStaff bool) (*entity.User, error) {
	if registration == nil || strings.TrimSpace(registration.Username) == "" {
		return nil, errors.New("username is required")
	}

	// Hash outside the lock; bcrypt is slow on purpose.
	hash, err := s.hasher.Hash(registration.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	key := strings.ToLower(registration.Username)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usernames[key]; exists {
		return nil, repository.ErrUserAlreadyExists
	}

	s.nextUser++
	record := &userRecord{
		user: entity.User{
			ID:        s.nextUser,
			Username:  registration.Username,
			Email:     registration.Email,
			FirstName: registration.FirstName,
			LastName:  registration.LastName,
			IsAdmin:   isStaff,
		},
		passwordHash: hash,
	}
	s.users[record.user.ID] = record
	s.usernames[key] = record.user.ID

	user := record.user

	return &user, nil
}

func (s *ShopStore) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	s.mu.RLock()
	id, ok := s.usernames[strings.ToLower(username)]
	var record userRecord
	if ok {
		record = *s.users[id]
	}
	s.mu.RUnlock()

	if !ok || !s.hasher.Check(password, record.passwordHash) {
		return nil, repository.ErrInvalidCredentials
	}

	return &record.user, nil
}

func (s *ShopStore) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := record.user

	return &user, nil
}

func (s *ShopStore) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(s.products))
	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, cloneProduct(s.products[id]))
	}

	return products, nil
}

func (s *ShopStore) FindProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return cloneProduct(product), nil
}

func (s *ShopStore) CreateProduct(ctx context.Context, draft *entity.ProductDraft, images []repository.StoredImage) (*entity.Product, error) {
	if draft == nil {
		return nil, errors.New("product draft is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProduct++
	now := s.now()
	product := &entity.Product{
		ID:                 s.nextProduct,
		Price:              decimal.Zero,
		DiscountPercentage: decimal.Zero,
		IsActive:           true,
		CreatedAt:          &now,
	}
	applyDraft(product, draft)
	s.attachImages(product, images)
	s.products[product.ID] = product

	return cloneProduct(product), nil
}

func (s *ShopStore) UpdateProduct(ctx context.Context, id int64, draft *entity.ProductDraft, images []repository.StoredImage) (*entity.Product, error) {
	if draft == nil {
		return nil, errors.New("product draft is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	applyDraft(product, draft)
	s.attachImages(product, images)

	return cloneProduct(product), nil
}

// DeleteProduct also drops the product from every cart. Past orders keep their snapshot.
func (s *ShopStore) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(s.products, id)

	for _, cart := range s.carts {
		cart.items = slices.DeleteFunc(cart.items, func(item cartItem) bool {
			return item.productID == id
		})
	}

	return nil
}

func (s *ShopStore) Cart(ctx context.Context, userID int64) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cartView(s.cartFor(userID)), nil
}

func (s *ShopStore) AddToCart(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error) {
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok || !product.IsActive {
		return nil, repository.ErrProductNotFound
	}
	if product.Quantity < 1 {
		return nil, repository.ErrOutOfStock
	}

	cart := s.cartFor(userID)
	idx := slices.IndexFunc(cart.items, func(item cartItem) bool { return item.productID == productID })
	if idx < 0 {
		s.nextItem++
		cart.items = append(cart.items, cartItem{id: s.nextItem, productID: productID})
		idx = len(cart.items) - 1
	}

	item := &cart.items[idx]
	item.quantity = min(item.quantity+quantity, product.Quantity)

	return &entity.CartLine{ID: item.id, Product: *cloneProduct(product), Quantity: item.quantity}, nil
}

// ReduceFromCart returns a nil line when the line was removed.
func (s *ShopStore) ReduceFromCart(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error) {
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(userID)
	idx := slices.IndexFunc(cart.items, func(item cartItem) bool { return item.productID == productID })
	if idx < 0 {
		return nil, repository.ErrNotInCart
	}

	item := &cart.items[idx]
	item.quantity -= quantity
	if item.quantity <= 0 {
		cart.items = slices.Delete(cart.items, idx, idx+1)

		return nil, nil
	}

	return &entity.CartLine{ID: item.id, Product: *cloneProduct(s.products[productID]), Quantity: item.quantity}, nil
}

func (s *ShopStore) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(userID)
	before := len(cart.items)
	cart.items = slices.DeleteFunc(cart.items, func(item cartItem) bool { return item.productID == productID })
	if len(cart.items) == before {
		return repository.ErrNotInCart
	}

	return nil
}

// Checkout is all or nothing: stock is checked for every line before any is decremented.
func (s *ShopStore) Checkout(ctx context.Context, userID int64) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(userID)
	view := s.cartView(cart)
	if len(view.Lines) == 0 {
		return nil, repository.ErrCartEmpty
	}

	for _, line := range view.Lines {
		if s.products[line.Product.ID].Quantity < line.Quantity {
			return nil, errors.Wrapf(repository.ErrOutOfStock, "product %d", line.Product.ID)
		}
	}
	for _, line := range view.Lines {
		s.products[line.Product.ID].Quantity -= line.Quantity
	}

	s.nextOrder++
	order := &entity.Order{
		ID:        s.nextOrder,
		Lines:     view.Lines,
		Total:     view.Total,
		Status:    entity.OrderStatusProcessing,
		CreatedAt: s.now(),
	}
	s.orders[userID] = append(s.orders[userID], order)
	cart.items = nil

	s.logger.Info("Order placed",
		slog.Int64("user_id", userID),
		slog.Int64("order_id", order.ID),
		slog.String("total", order.Total.StringFixed(2)),
	)

	return cloneOrder(order), nil
}

// ListOrders returns the user's orders, newest first.
func (s *ShopStore) ListOrders(ctx context.Context, userID int64) ([]*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*entity.Order, 0, len(s.orders[userID]))
	for _, order := range s.orders[userID] {
		orders = append(orders, cloneOrder(order))
	}
	slices.SortFunc(orders, func(a, b *entity.Order) int { return cmp.Compare(b.ID, a.ID) })

	return orders, nil
}

// cartFor must be called with the write lock held.
func (s *ShopStore) cartFor(userID int64) *cartRecord {
	cart, ok := s.carts[userID]
	if !ok {
		s.nextCart++
		cart = &cartRecord{id: s.nextCart}
		s.carts[userID] = cart
	}

	return cart
}

func (s *ShopStore) cartView(cart *cartRecord) *entity.Cart {
	view := &entity.Cart{ID: cart.id, Lines: make([]entity.CartLine, 0, len(cart.items)), Total: decimal.Zero}
	for _, item := range cart.items {
		product, ok := s.products[item.productID]
		if !ok {
			continue
		}
		line := entity.CartLine{ID: item.id, Product: *cloneProduct(product), Quantity: item.quantity}
		view.Lines = append(view.Lines, line)
		view.Total = view.Total.Add(line.LineTotal())
	}

	return view
}

// attachImages appends uploads; the first image of a product becomes primary.
func (s *ShopStore) attachImages(product *entity.Product, images []repository.StoredImage) {
	for _, img := range images {
		s.nextImage++
		product.Images = append(product.Images, entity.ProductImage{
			ID:        s.nextImage,
			URL:       img.URL,
			IsPrimary: len(product.Images) == 0,
		})
	}
}

func applyDraft(product *entity.Product, draft *entity.ProductDraft) {
	if draft.Name != nil {
		product.Name = *draft.Name
	}
	if draft.Description != nil {
		product.Description = *draft.Description
	}
	if draft.Price != nil {
		product.Price = *draft.Price
	}
	if draft.Quantity != nil {
		product.Quantity = *draft.Quantity
	}
	if draft.DiscountPercentage != nil {
		product.DiscountPercentage = *draft.DiscountPercentage
	}
	if draft.PromotionText != nil {
		product.PromotionText = *draft.PromotionText
	}
	if draft.ModelName != nil {
		product.ModelName = *draft.ModelName
	}
	if draft.Dimension != nil {
		product.Dimension = *draft.Dimension
	}
	if draft.IsActive != nil {
		product.IsActive = *draft.IsActive
	}
}

func cloneProduct(product *entity.Product) *entity.Product {
	clone := *product
	clone.Images = slices.Clone(product.Images)

	return &clone
}

func cloneOrder(order *entity.Order) *entity.Order {
	clone := *order
	clone.Lines = slices.Clone(order.Lines)

	return &clone
}
