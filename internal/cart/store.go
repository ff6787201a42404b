package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bike-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

// Notifier receives the user-visible confirmations raised by the store.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, toast models.Toast)
}

type Options struct {
	Logger   *slog.Logger
	Notifier Notifier
	// TTL of the persisted entry; zero uses the backend default.
	TTL time.Duration
}

// Store is the cart of one session. Every mutation goes through Reduce and
// the result is written back to the key-value store under cart:<sessionID>.
// Storage failures are logged and counted but never returned.
type Store struct {
	mu        sync.Mutex
	kv        cache.Cache
	key       string
	sessionID string
	state     models.Cart
	opts      Options
}

// Open rehydrates the session cart. A missing, unreadable or corrupt entry
// yields an empty cart.
func Open(ctx context.Context, kv cache.Cache, sessionID string, opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Store{
		kv:        kv,
		key:       cache.Key(cache.CartKeyPrefix, sessionID),
		sessionID: sessionID,
		state:     Empty(),
		opts:      opts,
	}

	var persisted models.Cart

	found, err := kv.Get(ctx, s.key, &persisted)
	if err != nil {
		metrics.CartPersistFailure("load")
		opts.Logger.Warn("Discarding unreadable cart state",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))

		return s
	}

	if found {
		s.state = Normalize(persisted)
	}

	return s
}

func (s *Store) SessionID() string {
	return s.sessionID
}

// State returns a copy of the current cart.
func (s *Store) State() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyCart(s.state)
}

func (s *Store) AddItem(ctx context.Context, product models.Product, quantity int) models.Cart {
	next := s.Dispatch(ctx, AddItemAction(product, quantity))

	if s.opts.Notifier != nil && quantity > 0 {
		s.opts.Notifier.Notify(ctx, s.sessionID, models.Toast{
			Title:       "Added to cart",
			Description: fmt.Sprintf("%s added to your cart.", product.Name),
			Variant:     models.ToastDefault,
			CreatedAt:   time.Now(),
		})
	}

	return next
}

func (s *Store) RemoveItem(ctx context.Context, productID string) models.Cart {
	return s.Dispatch(ctx, RemoveItemAction(productID))
}

func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) models.Cart {
	return s.Dispatch(ctx, UpdateQuantityAction(productID, quantity))
}

func (s *Store) Clear(ctx context.Context) models.Cart {
	return s.Dispatch(ctx, ClearAction())
}

// Dispatch applies action, persists the result and returns a copy of it.
func (s *Store) Dispatch(ctx context.Context, action Action) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	metrics.CartMutation(action.Kind.String())

	if err := s.kv.Set(ctx, s.key, s.state, s.opts.TTL); err != nil {
		metrics.CartPersistFailure("save")
		s.opts.Logger.Error("Failed to persist cart",
			slog.String("session_id", s.sessionID),
			slog.String("action", action.Kind.String()),
			slog.String("error", err.Error()))
	}

	return copyCart(s.state)
}

func copyCart(c models.Cart) models.Cart {
	c.Items = append([]models.CartItem{}, c.Items...)
	return c
}
