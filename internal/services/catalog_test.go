package service_test

import (
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	appErrors "github.com/aaravmahajanofficial/bike-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	service "github.com/aaravmahajanofficial/bike-storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIDs(products []*models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	return ids
}

func TestListProducts(t *testing.T) {
	ctx := testContext(t)
	catalogService := service.NewCatalogService(testCatalog(), 12)

	t.Run("Success - Search Text Is Trimmed", func(t *testing.T) {
		// Arrange
		query := catalog.DefaultQuery()
		query.Text = "  Yamaha  "

		// Act
		resp, err := catalogService.ListProducts(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Yamaha", resp.Query.Text)
		assert.Equal(t, []string{"1"}, productIDs(resp.Products))
		assert.Equal(t, "Yamaha", resp.Params["q"])
	})

	t.Run("Success - Search Text Is Matched Literally", func(t *testing.T) {
		// Arrange
		query := catalog.DefaultQuery()
		query.Text = "<yamaha"

		// Act
		resp, err := catalogService.ListProducts(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "<yamaha", resp.Query.Text)
		assert.Empty(t, resp.Products)
		assert.Equal(t, "<yamaha", resp.Params["q"])
	})

	t.Run("Success - Long Search Text Is Capped", func(t *testing.T) {
		// Arrange
		query := catalog.DefaultQuery()
		query.Text = strings.Repeat("r", service.MaxSearchLength+50)

		// Act
		resp, err := catalogService.ListProducts(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Len(t, resp.Query.Text, service.MaxSearchLength)
	})

	t.Run("Success - Page Size Is Fixed And Page Is Clamped", func(t *testing.T) {
		// Arrange
		query := catalog.DefaultQuery()
		query.PageSize = 50
		query.Page = 0
		query.Sort = models.SortPriceDesc

		// Act
		resp, err := catalogService.ListProducts(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 12, resp.PageSize)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, []string{"3", "2", "1"}, productIDs(resp.Products))
		assert.Equal(t, map[string]string{"sort": "priceDesc"}, resp.Params)
	})

	t.Run("Success - Page Past The End Is Empty", func(t *testing.T) {
		// Arrange
		query := catalog.DefaultQuery()
		query.Page = 4

		// Act
		resp, err := catalogService.ListProducts(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, resp.Products)
		assert.Equal(t, 1, resp.TotalPages)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := testContext(t)
	catalogService := service.NewCatalogService(testCatalog(), 12)

	t.Run("Success - Product With Related Bikes", func(t *testing.T) {
		// Act
		resp, err := catalogService.GetProduct(ctx, "yamaha-yzf-r15-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "1", resp.Product.ID)
		assert.Equal(t, []string{"3"}, productIDs(resp.Related))
		assert.Equal(t, catalog.FormatPrice(100000), resp.FormattedPrice)
	})

	t.Run("Failure - Unknown Slug", func(t *testing.T) {
		// Act
		resp, err := catalogService.GetProduct(ctx, "no-such-bike")

		// Assert
		assert.Nil(t, resp)
		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Unknown Id", func(t *testing.T) {
		// Act
		_, err := catalogService.GetProductByID(ctx, "99")

		// Assert
		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestCatalogListings(t *testing.T) {
	ctx := testContext(t)
	catalogService := service.NewCatalogService(testCatalog(), 12)

	t.Run("Success - Brands And Categories", func(t *testing.T) {
		assert.Len(t, catalogService.ListBrands(ctx), 10)
		assert.Len(t, catalogService.ListCategories(ctx), 7)
	})

	t.Run("Success - Products By Brand", func(t *testing.T) {
		products, err := catalogService.ProductsByBrand(ctx, "2")

		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, productIDs(products))
	})

	t.Run("Success - Products By Category", func(t *testing.T) {
		products, err := catalogService.ProductsByCategory(ctx, "sport-bikes")

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "3"}, productIDs(products))
	})

	t.Run("Success - Known Brand Without Products", func(t *testing.T) {
		products, err := catalogService.ProductsByBrand(ctx, "10")

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Failure - Unknown Brand Or Category", func(t *testing.T) {
		_, err := catalogService.ProductsByBrand(ctx, "42")
		requireAppError(t, err, appErrors.ErrCodeNotFound)

		_, err = catalogService.ProductsByCategory(ctx, "scooters")
		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestProductsInCollection(t *testing.T) {
	ctx := testContext(t)
	catalogService := service.NewCatalogService(testCatalog(), 12)

	tests := []struct {
		name       string
		collection string
		expected   []string
	}{
		{name: "Success - Featured", collection: service.CollectionFeatured, expected: []string{"1"}},
		{name: "Success - New Arrivals", collection: service.CollectionNew, expected: []string{"2"}},
		{name: "Success - Bestsellers", collection: service.CollectionBestsellers, expected: []string{"3"}},
		{name: "Success - On Sale", collection: service.CollectionOnSale, expected: []string{"2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			products, err := catalogService.ProductsInCollection(ctx, tc.collection)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, productIDs(products))
		})
	}

	t.Run("Failure - Unknown Collection", func(t *testing.T) {
		_, err := catalogService.ProductsInCollection(ctx, "clearance")

		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}
