package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {
	args := m.Called(ctx, req)

	return args.Error(0)
}

func (m *EmailService) GetSendGridClient() *sendgrid.Client {
	return nil
}
