package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListProducts(ctx context.Context, query models.CatalogQuery) (*models.ProductListResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*models.ProductListResponse)

	return resp, args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, slug string) (*models.ProductDetailResponse, error) {
	args := m.Called(ctx, slug)
	resp, _ := args.Get(0).(*models.ProductDetailResponse)

	return resp, args.Error(1)
}

func (m *CatalogService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)

	return product, args.Error(1)
}

func (m *CatalogService) ListBrands(ctx context.Context) []models.Brand {
	args := m.Called(ctx)
	brands, _ := args.Get(0).([]models.Brand)

	return brands
}

func (m *CatalogService) ListCategories(ctx context.Context) []models.Category {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)

	return categories
}

func (m *CatalogService) ProductsByBrand(ctx context.Context, brandID string) ([]*models.Product, error) {
	args := m.Called(ctx, brandID)
	products, _ := args.Get(0).([]*models.Product)

	return products, args.Error(1)
}

func (m *CatalogService) ProductsByCategory(ctx context.Context, slug string) ([]*models.Product, error) {
	args := m.Called(ctx, slug)
	products, _ := args.Get(0).([]*models.Product)

	return products, args.Error(1)
}

func (m *CatalogService) ProductsInCollection(ctx context.Context, name string) ([]*models.Product, error) {
	args := m.Called(ctx, name)
	products, _ := args.Get(0).([]*models.Product)

	return products, args.Error(1)
}
