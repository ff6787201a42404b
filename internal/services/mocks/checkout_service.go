package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, sessionID)
	resp, _ := args.Get(0).(*models.CheckoutResponse)

	return resp, args.Error(1)
}

func (m *CheckoutService) SubmitShipping(ctx context.Context, sessionID string, info *models.ShippingInfo) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, sessionID, info)
	resp, _ := args.Get(0).(*models.CheckoutResponse)

	return resp, args.Error(1)
}

func (m *CheckoutService) SubmitPayment(ctx context.Context, sessionID string, method *models.PaymentMethod) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, sessionID, method)
	resp, _ := args.Get(0).(*models.CheckoutResponse)

	return resp, args.Error(1)
}

func (m *CheckoutService) Back(ctx context.Context, sessionID string) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, sessionID)
	resp, _ := args.Get(0).(*models.CheckoutResponse)

	return resp, args.Error(1)
}

func (m *CheckoutService) CompleteOrder(ctx context.Context, sessionID string) (*models.Order, error) {
	args := m.Called(ctx, sessionID)
	order, _ := args.Get(0).(*models.Order)

	return order, args.Error(1)
}
