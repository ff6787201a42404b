package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/aaravmahajanofficial/bike-storefront/internal/utils"
	stripeClient "github.com/aaravmahajanofficial/bike-storefront/pkg/stripe"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
)

const (
	GatewaySimulated = "simulated"
	GatewayStripe    = "stripe"
)

// declinedTestCard is refused by the simulated gateway so the failure path
// can be exercised without a real processor.
const declinedTestCard = "4000000000000002"

var ErrPaymentDeclined = errors.New("payment declined")

type PaymentRequest struct {
	SessionID      string
	Amount         float64
	Currency       string
	Method         models.PaymentMethod
	IdempotencyKey string
}

type PaymentResult struct {
	Reference string
	Gateway   string
}

type PaymentGateway interface {
	Name() string
	Authorize(ctx context.Context, req *PaymentRequest) (*PaymentResult, error)
}

type simulatedGateway struct{}

func NewSimulatedGateway() PaymentGateway {
	return simulatedGateway{}
}

func (simulatedGateway) Name() string {
	return GatewaySimulated
}

func (simulatedGateway) Authorize(_ context.Context, req *PaymentRequest) (*PaymentResult, error) {
	if req.Method.Type.IsCard() && utils.NormalizeCardNumber(req.Method.CardNumber) == declinedTestCard {
		return nil, ErrPaymentDeclined
	}

	return &PaymentResult{Reference: "sim_" + uuid.NewString(), Gateway: GatewaySimulated}, nil
}

// stripeGateway charges card payments through Stripe and hands every other
// payment type to fallback.
type stripeGateway struct {
	client        stripeClient.Client
	paymentMethod string
	fallback      PaymentGateway
}

func NewStripeGateway(client stripeClient.Client, paymentMethod string, fallback PaymentGateway) PaymentGateway {
	return &stripeGateway{client: client, paymentMethod: paymentMethod, fallback: fallback}
}

func (g *stripeGateway) Name() string {
	return GatewayStripe
}

func (g *stripeGateway) Authorize(ctx context.Context, req *PaymentRequest) (*PaymentResult, error) {
	if !req.Method.Type.IsCard() {
		return g.fallback.Authorize(ctx, req)
	}

	intent, err := g.client.CreatePaymentIntent(ctx, &stripeClient.PaymentIntentRequest{
		Amount:         toMinorUnits(req.Amount),
		Currency:       req.Currency,
		Description:    "Bike storefront order",
		PaymentMethod:  g.paymentMethod,
		IdempotencyKey: req.IdempotencyKey,
		Metadata:       map[string]string{"session_id": req.SessionID, "payment_type": string(req.Method.Type)},
	})
	if err != nil {
		return nil, err
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusProcessing, stripe.PaymentIntentStatusRequiresCapture:
		return &PaymentResult{Reference: intent.ID, Gateway: GatewayStripe}, nil
	default:
		return nil, fmt.Errorf("%w: payment intent %s is %s", ErrPaymentDeclined, intent.ID, intent.Status)
	}
}

// toMinorUnits converts rupees to paise.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
