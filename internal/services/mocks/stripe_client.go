package mocks

import (
	"context"

	stripeClient "github.com/aaravmahajanofficial/bike-storefront/pkg/stripe"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

type StripeClient struct {
	mock.Mock
}

func (m *StripeClient) CreatePaymentIntent(ctx context.Context, req *stripeClient.PaymentIntentRequest) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, req)
	intent, _ := args.Get(0).(*stripe.PaymentIntent)

	return intent, args.Error(1)
}

func (m *StripeClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
