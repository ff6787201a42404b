package mocks

import (
	"context"

	service "github.com/aaravmahajanofficial/bike-storefront/internal/services"
	"github.com/stretchr/testify/mock"
)

type PaymentGateway struct {
	mock.Mock
}

func (m *PaymentGateway) Name() string {
	return "mock"
}

func (m *PaymentGateway) Authorize(ctx context.Context, req *service.PaymentRequest) (*service.PaymentResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*service.PaymentResult)

	return result, args.Error(1)
}

type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) Publish(ctx context.Context, eventType string, event any) error {
	args := m.Called(ctx, eventType, event)

	return args.Error(0)
}
