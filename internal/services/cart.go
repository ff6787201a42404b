package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bike-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartResponse, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID string, quantity int) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID string, productID string) (*models.CartResponse, error)
	ClearCart(ctx context.Context, sessionID string) (*models.CartResponse, error)
}

type cartService struct {
	catalog  *catalog.Catalog
	kv       cache.Cache
	notifier cart.Notifier
	pricing  Pricing
	ttl      time.Duration
	locks    *sessionLocks
}

func NewCartService(c *catalog.Catalog, kv cache.Cache, notifier cart.Notifier, pricing Pricing, ttl time.Duration) CartService {
	return &cartService{
		catalog:  c,
		kv:       kv,
		notifier: notifier,
		pricing:  pricing,
		ttl:      ttl,
		locks:    newSessionLocks(),
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	defer s.locks.lock(sessionID)()

	return s.respond(s.open(ctx, sessionID).State()), nil
}

// AddItem rejects unknown products and quantities beyond the stock level.
// A missing quantity means one.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartResponse, error) {
	product, ok := s.catalog.ProductByID(req.ProductID)
	if !ok {
		return nil, errors.NotFoundError("Product not found").WithDetail(req.ProductID)
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	defer s.locks.lock(sessionID)()

	store := s.open(ctx, sessionID)
	current := store.State()

	inCart := 0
	if i := current.Find(product.ID); i >= 0 {
		inCart = current.Items[i].Quantity
	}

	if err := checkStock(product, inCart+quantity); err != nil {
		return nil, err
	}

	return s.respond(store.AddItem(ctx, *product, quantity)), nil
}

// UpdateQuantity is a no-op for products not in the cart and removes the
// line when quantity is zero or less.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, productID string, quantity int) (*models.CartResponse, error) {
	defer s.locks.lock(sessionID)()

	store := s.open(ctx, sessionID)

	if product, ok := s.catalog.ProductByID(productID); ok && quantity > 0 && store.State().Find(productID) >= 0 {
		if err := checkStock(product, quantity); err != nil {
			return nil, err
		}
	}

	return s.respond(store.UpdateQuantity(ctx, productID, quantity)), nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, productID string) (*models.CartResponse, error) {
	defer s.locks.lock(sessionID)()

	return s.respond(s.open(ctx, sessionID).RemoveItem(ctx, productID)), nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	defer s.locks.lock(sessionID)()

	return s.respond(s.open(ctx, sessionID).Clear(ctx)), nil
}

func (s *cartService) open(ctx context.Context, sessionID string) *cart.Store {
	ctx, cancel := utils.WithStorageTimeout(ctx)
	defer cancel()

	return cart.Open(ctx, s.kv, sessionID, cart.Options{
		Logger:   middleware.LoggerFromContext(ctx),
		Notifier: s.notifier,
		TTL:      s.ttl,
	})
}

func (s *cartService) respond(c models.Cart) *models.CartResponse {
	return &models.CartResponse{Cart: &c, Summary: s.pricing.Summarize(c)}
}

func checkStock(product *models.Product, wanted int) error {
	if !product.InStock() {
		return errors.OutOfStockError("Product is out of stock").WithDetail(product.Name)
	}

	if wanted > product.Stock {
		return errors.OutOfStockError("Not enough stock").
			WithDetail(fmt.Sprintf("only %d of %s available", product.Stock, product.Name))
	}

	return nil
}
