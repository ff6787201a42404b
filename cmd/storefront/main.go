package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/bike-storefront/internal/config"
	"github.com/aaravmahajanofficial/bike-storefront/internal/health"
	"github.com/aaravmahajanofficial/bike-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/bike-storefront/internal/notify"
	"github.com/aaravmahajanofficial/bike-storefront/internal/ratelimit"
	service "github.com/aaravmahajanofficial/bike-storefront/internal/services"
	"github.com/aaravmahajanofficial/bike-storefront/internal/tracing"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils"
	"github.com/aaravmahajanofficial/bike-storefront/pkg/rabbitmq"
	"github.com/aaravmahajanofficial/bike-storefront/pkg/sendgrid"
	stripeClient "github.com/aaravmahajanofficial/bike-storefront/pkg/stripe"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Catalog setup
	products := catalog.NewGenerated(catalog.GeneratorConfig{Seed: cfg.Catalog.Seed, Count: cfg.Catalog.ProductCount})
	slog.Info("catalog generated", slog.Int("products", products.Len()), slog.Uint64("seed", cfg.Catalog.Seed))

	// Session storage setup
	kv, redisClient := cache.New(ctx, cfg, logger)

	defer func() {
		if err := kv.Close(); err != nil {
			slog.Error("⚠️ Error closing session storage", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Session storage closed")
		}
	}()

	validate := utils.NewValidator()
	inbox := notify.NewInbox(notify.DefaultInboxSize, logger)
	pricing := service.Pricing{TaxRate: cfg.Checkout.TaxRate, ShippingFee: cfg.Checkout.ShippingFee}

	// Payment gateway
	var (
		gateway = service.NewSimulatedGateway()
		stripe  stripeClient.Client
	)
	if cfg.Checkout.Gateway == config.GatewayStripe {
		stripe = stripeClient.NewStripeClient(cfg.Stripe.APIKey)
		gateway = service.NewStripeGateway(stripe, cfg.Stripe.PaymentMethod, gateway)
	}

	// Email is optional
	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	checkoutOpts := service.CheckoutOptions{
		PaymentDelay: cfg.Checkout.PaymentDelay,
		Currency:     cfg.Checkout.Currency,
		TTL:          cfg.Cache.DefaultTTL,
		Notifier:     inbox,
		Limiter:      ratelimit.New(cfg.RateConfig, redisClient),
	}

	// Order events are optional
	if cfg.RabbitMQ.URL != "" {
		publisher, err := rabbitmq.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			slog.Warn("⚠️ Order events disabled, RabbitMQ is unreachable", slog.String("error", err.Error()))
		} else {
			checkoutOpts.Publisher = publisher

			defer func() {
				if err := publisher.Close(); err != nil {
					slog.Error("⚠️ Error closing RabbitMQ publisher", slog.String("error", err.Error()))
				}
			}()
		}
	}

	catalogService := service.NewCatalogService(products, cfg.Catalog.PageSize)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(products, kv, inbox, pricing, cfg.Cache.DefaultTTL)
	cartHandler := handlers.NewCartHandler(cartService)
	notificationService := service.NewNotificationService(emailService, inbox, validate)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	checkoutService := service.NewCheckoutService(cartService, kv, gateway, notificationService, validate, checkoutOpts)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	healthChecker, err := health.NewHealthHandler(cfg, &health.Endpoints{
		Cache:        kv,
		Catalog:      products,
		RedisClient:  redisClient,
		StripeClient: stripe,
	})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("gateway", gateway.Name()),
		slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{slug}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/brands", catalogHandler.ListBrands())
	routerMux.HandleFunc("GET /api/v1/brands/{id}/products", catalogHandler.BrandProducts())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/categories/{slug}/products", catalogHandler.CategoryProducts())
	routerMux.HandleFunc("GET /api/v1/collections/{name}", catalogHandler.Collection())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{productId}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{productId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("GET /api/v1/checkout", checkoutHandler.GetCheckout())
	routerMux.HandleFunc("POST /api/v1/checkout/shipping", checkoutHandler.SubmitShipping())
	routerMux.HandleFunc("POST /api/v1/checkout/payment", checkoutHandler.SubmitPayment())
	routerMux.HandleFunc("POST /api/v1/checkout/back", checkoutHandler.Back())
	routerMux.HandleFunc("POST /api/v1/checkout/complete", checkoutHandler.CompleteOrder())
	routerMux.HandleFunc("GET /api/v1/notifications", notificationHandler.ListNotifications())
	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining, innermost first. The metrics middleware reads the
	// route pattern the mux sets on the request, so it must wrap the mux directly.
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Session(handler)
	handler = middleware.Logging(handler)
	handler = tracing.Handler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
