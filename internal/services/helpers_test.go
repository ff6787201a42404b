package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	appErrors "github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/stretchr/testify/require"
)

var (
	yamaha  = models.Brand{ID: "1", Name: "Yamaha"}
	honda   = models.Brand{ID: "2", Name: "Honda"}
	ducati  = models.Brand{ID: "5", Name: "Ducati"}
	sport   = models.Category{ID: "1", Name: "Sport Bikes", Slug: "sport-bikes"}
	cruiser = models.Category{ID: "2", Name: "Cruisers", Slug: "cruisers"}
)

func price(v float64) *float64 {
	return &v
}

// testCatalog holds three bikes: an in-stock featured bike, a discounted
// bike with two units left and a sold-out bestseller.
func testCatalog() *catalog.Catalog {
	products := []*models.Product{
		{ID: "1", Name: "Yamaha YZF-R15", Slug: "yamaha-yzf-r15-1", Price: 100000, Stock: 5, Brand: yamaha, Category: sport, Featured: true, Rating: 4},
		{ID: "2", Name: "Honda Shadow 750", Slug: "honda-shadow-750-2", Price: 200000, SalePrice: price(170000), OnSale: true, New: true, Stock: 2, Brand: honda, Category: cruiser, Rating: 5},
		{ID: "3", Name: "Ducati Monster 821", Slug: "ducati-monster-821-3", Price: 1500000, Stock: 0, Bestseller: true, Brand: ducati, Category: sport, Rating: 3},
	}

	return catalog.New(products, catalog.Brands(), catalog.Categories())
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	return middleware.WithLogger(t.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func requireAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	require.Error(t, err)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.Code)

	return appErr
}

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []models.Toast
}

func (n *recordingNotifier) Notify(_ context.Context, _ string, toast models.Toast) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.toasts = append(n.toasts, toast)
}

func (n *recordingNotifier) titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	titles := make([]string, 0, len(n.toasts))
	for _, toast := range n.toasts {
		titles = append(titles, toast.Title)
	}

	return titles
}

// manualScheduler records scheduled callbacks until the test fires them.
type manualScheduler struct {
	mu     sync.Mutex
	delays []time.Duration
	funcs  []func()
}

func (s *manualScheduler) schedule(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delays = append(s.delays, d)
	s.funcs = append(s.funcs, f)
}

func (s *manualScheduler) fire() {
	s.mu.Lock()
	funcs := s.funcs
	s.funcs = nil
	s.mu.Unlock()

	for _, f := range funcs {
		f()
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
