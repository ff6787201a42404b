package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/bike-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/aaravmahajanofficial/bike-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/bike-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCatalogTest() (*mocks.CatalogService, *handlers.CatalogHandler) {
	mockCatalogService := new(mocks.CatalogService)
	return mockCatalogService, handlers.NewCatalogHandler(mockCatalogService)
}

func TestListProducts(t *testing.T) {
	t.Run("Success - Query Parameters Are Decoded", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet,
			"/api/v1/products?q=ninja&brand=3,1&sort=priceAsc&minPrice=100000&page=2", nil, nil)
		recorder := httptest.NewRecorder()

		expected := &models.ProductListResponse{
			ProductPage: models.ProductPage{Products: []*models.Product{{ID: "7"}}, Total: 13, Page: 2, PageSize: 12, TotalPages: 2},
			Params:      map[string]string{"q": "ninja"},
		}

		mockCatalogService.On("ListProducts", mock.Anything, mock.MatchedBy(func(q models.CatalogQuery) bool {
			return q.Text == "ninja" &&
				assert.ObjectsAreEqual([]string{"3", "1"}, q.Brands) &&
				q.Sort == models.SortPriceAsc &&
				q.Price.Min == 100000 &&
				q.Price.Max == 3000000 &&
				q.Page == 2
		})).Return(expected, nil).Once()

		// Act
		catalogHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decode[models.ProductListResponse](t, recorder)
		assert.True(t, resp.Success)
		assert.Equal(t, 13, resp.Data.Total)
		assert.Equal(t, "7", resp.Data.Products[0].ID)

		mockCatalogService.AssertExpectations(t)
	})

	t.Run("Success - Malformed Parameters Fall Back To Defaults", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet,
			"/api/v1/products?minPrice=cheap&sort=popular&page=-3", nil, nil)
		recorder := httptest.NewRecorder()

		mockCatalogService.On("ListProducts", mock.Anything, mock.MatchedBy(func(q models.CatalogQuery) bool {
			return q.Sort == models.SortFeatured && q.Page == 1 && q.Price.Min == 0
		})).Return(&models.ProductListResponse{}, nil).Once()

		// Act
		catalogHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCatalogService.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success - Product Found", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products/ktm-duke-390-4", nil,
			map[string]string{"slug": "ktm-duke-390-4"})
		recorder := httptest.NewRecorder()

		detail := &models.ProductDetailResponse{
			Product:        &models.Product{ID: "4", Slug: "ktm-duke-390-4"},
			Related:        []*models.Product{{ID: "9"}},
			FormattedPrice: "₹3,10,000",
		}
		mockCatalogService.On("GetProduct", mock.Anything, "ktm-duke-390-4").Return(detail, nil).Once()

		// Act
		catalogHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		resp := decode[models.ProductDetailResponse](t, recorder)
		assert.Equal(t, "4", resp.Data.Product.ID)
		assert.Len(t, resp.Data.Related, 1)

		mockCatalogService.AssertExpectations(t)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/products/missing", nil,
			map[string]string{"slug": "missing"})
		recorder := httptest.NewRecorder()

		mockCatalogService.On("GetProduct", mock.Anything, "missing").
			Return(nil, appErrors.NotFoundError("Product not found").WithDetail("missing")).Once()

		// Act
		catalogHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		resp := decode[any](t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, []string{"missing"}, resp.Error.Details)
	})
}

func TestCatalogListings(t *testing.T) {
	t.Run("Success - Brands", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/brands", nil, nil)
		recorder := httptest.NewRecorder()

		mockCatalogService.On("ListBrands", mock.Anything).Return([]models.Brand{{ID: "1", Name: "Yamaha"}}).Once()

		// Act
		catalogHandler.ListBrands()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Yamaha", decode[[]models.Brand](t, recorder).Data[0].Name)
	})

	t.Run("Success - Categories", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/categories", nil, nil)
		recorder := httptest.NewRecorder()

		mockCatalogService.On("ListCategories", mock.Anything).Return([]models.Category{{ID: "2", Slug: "cruisers"}}).Once()

		// Act
		catalogHandler.ListCategories()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "cruisers", decode[[]models.Category](t, recorder).Data[0].Slug)
	})

	t.Run("Success - Brand Products", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/brands/5/products", nil,
			map[string]string{"id": "5"})
		recorder := httptest.NewRecorder()

		mockCatalogService.On("ProductsByBrand", mock.Anything, "5").Return([]*models.Product{{ID: "11"}, {ID: "12"}}, nil).Once()

		// Act
		catalogHandler.BrandProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, decode[[]models.Product](t, recorder).Data, 2)
	})

	t.Run("Failure - Unknown Category", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/categories/scooters/products", nil,
			map[string]string{"slug": "scooters"})
		recorder := httptest.NewRecorder()

		mockCatalogService.On("ProductsByCategory", mock.Anything, "scooters").
			Return(nil, appErrors.NotFoundError("Category not found")).Once()

		// Act
		catalogHandler.CategoryProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Success - Collection", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/collections/on-sale", nil,
			map[string]string{"name": "on-sale"})
		recorder := httptest.NewRecorder()

		mockCatalogService.On("ProductsInCollection", mock.Anything, "on-sale").Return([]*models.Product{{ID: "3", OnSale: true}}, nil).Once()

		// Act
		catalogHandler.Collection()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, decode[[]models.Product](t, recorder).Data[0].OnSale)
	})

	t.Run("Failure - Unknown Collection", func(t *testing.T) {
		// Arrange
		mockCatalogService, catalogHandler := setupCatalogTest()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/collections/clearance", nil,
			map[string]string{"name": "clearance"})
		recorder := httptest.NewRecorder()

		mockCatalogService.On("ProductsInCollection", mock.Anything, "clearance").
			Return(nil, appErrors.NotFoundError("Collection not found")).Once()

		// Act
		catalogHandler.Collection()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
