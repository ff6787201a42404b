package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bike-storefront/internal/cache"
	"github.com/aaravmahajanofficial/bike-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/aaravmahajanofficial/bike-storefront/internal/ratelimit"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const (
	EventOrderPlaced    = "order.placed"
	DefaultPaymentDelay = 2 * time.Second
	DefaultCountry      = "India"
)

type CheckoutService interface {
	GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutResponse, error)
	SubmitShipping(ctx context.Context, sessionID string, info *models.ShippingInfo) (*models.CheckoutResponse, error)
	SubmitPayment(ctx context.Context, sessionID string, method *models.PaymentMethod) (*models.CheckoutResponse, error)
	Back(ctx context.Context, sessionID string) (*models.CheckoutResponse, error)
	CompleteOrder(ctx context.Context, sessionID string) (*models.Order, error)
}

// OrderPublisher announces placed orders to downstream consumers.
type OrderPublisher interface {
	Publish(ctx context.Context, eventType string, event any) error
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func())

func AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

type CheckoutOptions struct {
	PaymentDelay time.Duration
	Currency     string
	TTL          time.Duration
	Scheduler    Scheduler
	Now          func() time.Time
	Notifier     cart.Notifier
	// Publisher may be nil when no broker is configured.
	Publisher OrderPublisher
	// Limiter caps payment attempts per session. Nil disables the limit.
	Limiter ratelimit.Limiter
}

type checkoutService struct {
	carts         CartService
	kv            cache.Cache
	gateway       PaymentGateway
	notifications NotificationService
	validate      *validator.Validate
	policy        *bluemonday.Policy
	locks         *sessionLocks
	opts          CheckoutOptions
}

func NewCheckoutService(
	carts CartService,
	kv cache.Cache,
	gateway PaymentGateway,
	notifications NotificationService,
	validate *validator.Validate,
	opts CheckoutOptions,
) CheckoutService {
	if opts.PaymentDelay <= 0 {
		opts.PaymentDelay = DefaultPaymentDelay
	}

	if opts.Currency == "" {
		opts.Currency = "inr"
	}

	if opts.Scheduler == nil {
		opts.Scheduler = AfterFunc
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &checkoutService{
		carts:         carts,
		kv:            kv,
		gateway:       gateway,
		notifications: notifications,
		validate:      validate,
		policy:        bluemonday.StrictPolicy(),
		locks:         newSessionLocks(),
		opts:          opts,
	}
}

// GetCheckout returns the current step with a summary of the live cart.
// A payment that has been processing for longer than the delay is reported
// as confirmed even if its callback has not fired yet.
func (s *checkoutService) GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutResponse, error) {
	defer s.locks.lock(sessionID)()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if s.promote(state) {
		if err := s.save(ctx, sessionID, state); err != nil {
			return nil, err
		}
	}

	return s.respond(ctx, sessionID, state)
}

func (s *checkoutService) SubmitShipping(ctx context.Context, sessionID string, info *models.ShippingInfo) (*models.CheckoutResponse, error) {
	defer s.locks.lock(sessionID)()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if state.Step != models.StepShipping && state.Step != models.StepPayment {
		return nil, errors.InvalidCheckoutStepError("Shipping details can no longer be changed").WithDetail(string(state.Step))
	}

	if _, err := s.requireItems(ctx, sessionID); err != nil {
		return nil, err
	}

	shipping := s.sanitizeShipping(info)

	if err := utils.ValidateStruct(s.validate, shipping); err != nil {
		return nil, errors.ValidationError("Invalid shipping details").WithError(err)
	}

	state.Step = models.StepPayment
	state.Shipping = shipping

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return s.respond(ctx, sessionID, state)
}

// SubmitPayment authorises the payment synchronously and, on success, moves
// the checkout to processing. Confirmation follows after the payment delay.
func (s *checkoutService) SubmitPayment(ctx context.Context, sessionID string, method *models.PaymentMethod) (*models.CheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	defer s.locks.lock(sessionID)()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if state.Step != models.StepPayment {
		return nil, errors.InvalidCheckoutStepError("Payment is not expected at this step").WithDetail(string(state.Step))
	}

	current, err := s.requireItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	payment := *method
	payment.CardNumber = utils.NormalizeCardNumber(payment.CardNumber)
	payment.NameOnCard = plainText(s.policy, payment.NameOnCard)
	payment.UPIID = plainText(s.policy, payment.UPIID)

	if err := utils.ValidateStruct(s.validate, &payment); err != nil {
		return nil, errors.ValidationError("Invalid payment details").WithError(err)
	}

	if err := s.checkPaymentRate(ctx, sessionID); err != nil {
		return nil, err
	}

	result, err := s.gateway.Authorize(ctx, &PaymentRequest{
		SessionID:      sessionID,
		Amount:         current.Summary.Total,
		Currency:       s.opts.Currency,
		Method:         payment,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		metrics.Payment(s.gateway.Name(), string(payment.Type), "failed")
		logger.Warn("Payment authorisation failed",
			slog.String("gateway", s.gateway.Name()),
			slog.String("payment_type", string(payment.Type)),
			slog.String("error", err.Error()))

		return nil, errors.ThirdPartyError("Payment could not be processed").WithError(err)
	}

	metrics.Payment(result.Gateway, string(payment.Type), "authorized")

	now := s.opts.Now()
	masked := payment.Masked()

	state.Step = models.StepProcessing
	state.Payment = &masked
	state.PaymentReference = result.Reference
	state.Authorized = &models.AuthorizedCart{
		Items:      slices.Clone(current.Cart.Items),
		TotalItems: current.Cart.TotalItems,
		Summary:    *current.Summary,
	}
	state.ProcessingSince = &now

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	logger.Info("Payment authorised",
		slog.String("gateway", result.Gateway),
		slog.String("reference", result.Reference))

	s.scheduleConfirmation(ctx, sessionID, result.Reference)

	return s.respond(ctx, sessionID, state)
}

func (s *checkoutService) Back(ctx context.Context, sessionID string) (*models.CheckoutResponse, error) {
	defer s.locks.lock(sessionID)()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if state.Step != models.StepPayment {
		return nil, errors.InvalidCheckoutStepError("Cannot go back from this step").WithDetail(string(state.Step))
	}

	state.Step = models.StepShipping

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return s.respond(ctx, sessionID, state)
}

// CompleteOrder turns a confirmed checkout into an order holding exactly what
// was charged. Once the paid lines leave the cart the order stands; failures
// to publish or email are only logged.
func (s *checkoutService) CompleteOrder(ctx context.Context, sessionID string) (*models.Order, error) {
	logger := middleware.LoggerFromContext(ctx)

	defer s.locks.lock(sessionID)()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.promote(state)

	if state.Step != models.StepConfirmation {
		return nil, errors.InvalidCheckoutStepError("Order is not ready to be placed").WithDetail(string(state.Step))
	}

	paid := state.Authorized
	if paid == nil || state.Shipping == nil || state.Payment == nil {
		return nil, errors.InvalidCheckoutStepError("No authorised payment to complete").WithDetail(string(state.Step))
	}

	now := s.opts.Now()
	order := &models.Order{
		ID:               uuid.New(),
		SessionID:        sessionID,
		Items:            paid.Items,
		TotalItems:       paid.TotalItems,
		Summary:          paid.Summary,
		ShippingInfo:     *state.Shipping,
		PaymentMethod:    *state.Payment,
		PaymentReference: state.PaymentReference,
		Status:           models.OrderStatusProcessing,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.settleCart(ctx, sessionID, paid.Items); err != nil {
		return nil, err
	}

	if err := s.reset(ctx, sessionID); err != nil {
		logger.Warn("Failed to reset checkout state", slog.String("error", err.Error()))
	}

	metrics.OrderPlaced(string(order.PaymentMethod.Type))

	logger.Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.Int("total_items", order.TotalItems),
		slog.Float64("total", order.Summary.Total))

	if s.opts.Publisher != nil {
		if err := s.opts.Publisher.Publish(ctx, EventOrderPlaced, models.NewOrderPlacedEvent(order)); err != nil {
			logger.Error("Failed to publish order event",
				slog.String("order_id", order.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	if err := s.notifications.SendOrderConfirmation(ctx, order); err != nil {
		logger.Error("Failed to send order confirmation",
			slog.String("order_id", order.ID.String()),
			slog.String("error", err.Error()))
	}

	if s.opts.Notifier != nil {
		s.opts.Notifier.Notify(ctx, sessionID, models.Toast{
			Title:       "Order placed",
			Description: fmt.Sprintf("Your order %s has been confirmed.", order.ID),
			Variant:     models.ToastDefault,
			CreatedAt:   now,
		})
	}

	return order, nil
}

func (s *checkoutService) checkPaymentRate(ctx context.Context, sessionID string) error {
	if s.opts.Limiter == nil {
		return nil
	}

	result, err := s.opts.Limiter.Allow(ctx, sessionID)
	if err != nil {
		return errors.StorageError("Payment rate limit check failed").WithError(err)
	}

	if !result.Allowed {
		return errors.TooManyRequestsError("Too many payment attempts. Please try again later.").
			WithDetail(fmt.Sprintf("retry after %d seconds", int(result.RetryAfter.Seconds())))
	}

	return nil
}

// scheduleConfirmation arms the one-shot callback that moves a processing
// checkout to confirmation. A callback for a superseded payment does nothing.
func (s *checkoutService) scheduleConfirmation(ctx context.Context, sessionID, reference string) {
	ctx = context.WithoutCancel(ctx)

	s.opts.Scheduler(s.opts.PaymentDelay, func() {
		logger := middleware.LoggerFromContext(ctx)

		defer s.locks.lock(sessionID)()

		state, err := s.load(ctx, sessionID)
		if err != nil {
			logger.Error("Failed to load checkout for confirmation", slog.String("error", err.Error()))
			return
		}

		if state.Step != models.StepProcessing || state.PaymentReference != reference {
			return
		}

		state.Step = models.StepConfirmation

		if err := s.save(ctx, sessionID, state); err != nil {
			logger.Error("Failed to confirm payment", slog.String("error", err.Error()))
			return
		}

		logger.Info("Payment confirmed", slog.String("reference", reference))
	})
}

func (s *checkoutService) promote(state *models.CheckoutState) bool {
	if state.Step != models.StepProcessing || state.ProcessingSince == nil {
		return false
	}

	if s.opts.Now().Sub(*state.ProcessingSince) < s.opts.PaymentDelay {
		return false
	}

	state.Step = models.StepConfirmation

	return true
}

func (s *checkoutService) requireItems(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	current, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if current.Cart.IsEmpty() {
		return nil, errors.EmptyCartError("Your cart is empty")
	}

	return current, nil
}

// settleCart takes the paid lines out of the cart. Anything added after the
// payment was authorised stays in the cart for a later checkout.
func (s *checkoutService) settleCart(ctx context.Context, sessionID string, paid []models.CartItem) error {
	current, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return err
	}

	remaining := make(map[string]int, len(current.Cart.Items))
	for _, item := range current.Cart.Items {
		remaining[item.Product.ID] = item.Quantity
	}

	for _, item := range paid {
		if _, ok := remaining[item.Product.ID]; ok {
			remaining[item.Product.ID] -= item.Quantity
		}
	}

	leftover := false
	for _, quantity := range remaining {
		if quantity > 0 {
			leftover = true
			break
		}
	}

	if !leftover {
		_, err := s.carts.ClearCart(ctx, sessionID)
		return err
	}

	middleware.LoggerFromContext(ctx).Warn("Cart changed after payment, keeping unpaid items",
		slog.Int("paid_lines", len(paid)))

	for _, item := range paid {
		quantity, ok := remaining[item.Product.ID]
		if !ok {
			continue
		}

		if _, err := s.carts.UpdateQuantity(ctx, sessionID, item.Product.ID, quantity); err != nil {
			return err
		}
	}

	return nil
}

func (s *checkoutService) sanitizeShipping(info *models.ShippingInfo) *models.ShippingInfo {
	shipping := &models.ShippingInfo{
		Name:       plainText(s.policy, info.Name),
		Email:      plainText(s.policy, info.Email),
		Phone:      plainText(s.policy, info.Phone),
		Address:    plainText(s.policy, info.Address),
		City:       plainText(s.policy, info.City),
		State:      plainText(s.policy, info.State),
		PostalCode: plainText(s.policy, info.PostalCode),
		Country:    plainText(s.policy, info.Country),
	}

	if shipping.Country == "" {
		shipping.Country = DefaultCountry
	}

	return shipping
}

// respond reports the charged cart once a payment is authorised and the
// live cart before that.
func (s *checkoutService) respond(ctx context.Context, sessionID string, state *models.CheckoutState) (*models.CheckoutResponse, error) {
	if paid := state.Authorized; paid != nil {
		summary := paid.Summary

		return &models.CheckoutResponse{
			State:   state,
			Summary: &summary,
			Items:   paid.Items,
		}, nil
	}

	current, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.CheckoutResponse{
		State:   state,
		Summary: current.Summary,
		Items:   current.Cart.Items,
	}, nil
}

func (s *checkoutService) load(ctx context.Context, sessionID string) (*models.CheckoutState, error) {
	ctx, cancel := utils.WithStorageTimeout(ctx)
	defer cancel()

	var state models.CheckoutState

	found, err := s.kv.Get(ctx, cache.Key(cache.CheckoutKeyPrefix, sessionID), &state)
	if err != nil {
		return nil, errors.StorageError("Failed to load checkout").WithError(err)
	}

	if !found || state.Step == "" {
		return &models.CheckoutState{Step: models.StepShipping, UpdatedAt: s.opts.Now()}, nil
	}

	return &state, nil
}

func (s *checkoutService) save(ctx context.Context, sessionID string, state *models.CheckoutState) error {
	ctx, cancel := utils.WithStorageTimeout(ctx)
	defer cancel()

	state.UpdatedAt = s.opts.Now()

	if err := s.kv.Set(ctx, cache.Key(cache.CheckoutKeyPrefix, sessionID), state, s.opts.TTL); err != nil {
		return errors.StorageError("Failed to save checkout").WithError(err)
	}

	return nil
}

func (s *checkoutService) reset(ctx context.Context, sessionID string) error {
	ctx, cancel := utils.WithStorageTimeout(ctx)
	defer cancel()

	return s.kv.Delete(ctx, cache.Key(cache.CheckoutKeyPrefix, sessionID))
}
