package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID)
	resp, _ := args.Get(0).(*models.CartResponse)

	return resp, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID, req)
	resp, _ := args.Get(0).(*models.CartResponse)

	return resp, args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID string, quantity int) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	resp, _ := args.Get(0).(*models.CartResponse)

	return resp, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID string, productID string) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID, productID)
	resp, _ := args.Get(0).(*models.CartResponse)

	return resp, args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, sessionID string) (*models.CartResponse, error) {
	args := m.Called(ctx, sessionID)
	resp, _ := args.Get(0).(*models.CartResponse)

	return resp, args.Error(1)
}
