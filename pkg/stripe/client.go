package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// PaymentIntentRequest describes a one-shot card charge. Amount is in the
// smallest currency unit (paise for INR).
type PaymentIntentRequest struct {
	Amount         int64
	Currency       string
	Description    string
	PaymentMethod  string
	IdempotencyKey string
	Metadata       map[string]string
}

// defines the methods that any of payment client must implement.
type Client interface {
	CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*stripe.PaymentIntent, error)
	Ping(ctx context.Context) error
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// CreatePaymentIntent creates and confirms the intent in one call.
func (s *stripeClient) CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		Description:        stripe.String(req.Description),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
	}
	params.Context = ctx

	if req.PaymentMethod != "" {
		params.PaymentMethod = stripe.String(req.PaymentMethod)
	}

	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent, nil
}

func (s *stripeClient) Ping(ctx context.Context) error {
	params := &stripe.BalanceParams{}
	params.Context = ctx

	if _, err := balance.Get(params); err != nil {
		return fmt.Errorf("failed to connect to stripe: %w", err)
	}

	return nil
}
