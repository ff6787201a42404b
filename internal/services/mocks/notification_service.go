package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *NotificationService) Drain(ctx context.Context, sessionID string) []models.Toast {
	args := m.Called(ctx, sessionID)
	toasts, _ := args.Get(0).([]models.Toast)

	return toasts
}
