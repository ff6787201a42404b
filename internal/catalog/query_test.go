package catalog_test

import (
	"testing"

	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	products := []*models.Product{
		fixtureProduct("1", "Yamaha YZF-R15", yamaha, sport, 100, nil, 4),
		fixtureProduct("2", "Honda Shadow 750", honda, cruiser, 200, price(180), 3),
		fixtureProduct("3", "Ducati Panigale V4", ducati, sport, 300, price(240), 5),
	}

	t.Run("Success - Effective Price Range Is Inclusive", func(t *testing.T) {
		// Arrange
		q := catalog.DefaultQuery()
		q.Price = models.PriceRange{Min: 150, Max: 250}

		// Act
		result := catalog.Filter(products, q)

		// Assert
		assert.Equal(t, []string{"2", "3"}, ids(result))
	})

	t.Run("Success - Price Bounds Match Exactly", func(t *testing.T) {
		q := catalog.DefaultQuery()
		q.Price = models.PriceRange{Min: 100, Max: 180}

		result := catalog.Filter(products, q)

		assert.Equal(t, []string{"1", "2"}, ids(result))
	})

	t.Run("Success - Text Matches Name Brand Or Category", func(t *testing.T) {
		q := catalog.DefaultQuery()

		assert.Equal(t, []string{"3"}, ids(catalog.Filter(products, catalog.WithText(q, "PANIGALE"))))
		assert.Equal(t, []string{"2"}, ids(catalog.Filter(products, catalog.WithText(q, "honda"))))
		assert.Equal(t, []string{"1", "3"}, ids(catalog.Filter(products, catalog.WithText(q, "sport"))))
		assert.Empty(t, catalog.Filter(products, catalog.WithText(q, "vespa")))
	})

	t.Run("Success - Brand And Category Filters Combine", func(t *testing.T) {
		q := catalog.DefaultQuery()
		q.Brands = []string{"1", "2"}
		q.Categories = []string{"1"}

		result := catalog.Filter(products, q)

		assert.Equal(t, []string{"1"}, ids(result))
	})

	t.Run("Success - Input Is Not Modified", func(t *testing.T) {
		q := catalog.DefaultQuery()
		q.Sort = models.SortPriceDesc

		catalog.Run(products, q)

		assert.Equal(t, []string{"1", "2", "3"}, ids(products))
	})
}

func TestSortProducts(t *testing.T) {
	newSet := func() []*models.Product {
		return []*models.Product{
			fixtureProduct("2", "B", honda, cruiser, 500, nil, 3),
			fixtureProduct("10", "C", ducati, sport, 900, price(300), 5),
			fixtureProduct("1", "A", yamaha, sport, 700, nil, 3),
		}
	}

	t.Run("Success - Price Ascending And Descending Are Reversed", func(t *testing.T) {
		asc := newSet()
		desc := newSet()

		catalog.SortProducts(asc, models.SortPriceAsc)
		catalog.SortProducts(desc, models.SortPriceDesc)

		assert.Equal(t, []string{"10", "2", "1"}, ids(asc))
		reversed := ids(desc)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		assert.Equal(t, ids(asc), reversed)
	})

	t.Run("Success - Newest Uses Numeric Id", func(t *testing.T) {
		products := newSet()

		catalog.SortProducts(products, models.SortNewest)

		assert.Equal(t, []string{"10", "2", "1"}, ids(products))
	})

	t.Run("Success - Rating Is Stable For Ties", func(t *testing.T) {
		products := newSet()

		catalog.SortProducts(products, models.SortRating)

		assert.Equal(t, []string{"10", "2", "1"}, ids(products))
	})

	t.Run("Success - Featured Keeps Catalog Order", func(t *testing.T) {
		products := newSet()

		catalog.SortProducts(products, models.SortFeatured)

		assert.Equal(t, []string{"2", "10", "1"}, ids(products))
	})
}

func TestPaginate(t *testing.T) {
	products := manyProducts(30)

	tests := []struct {
		name      string
		page      int
		wantLen   int
		wantFirst string
	}{
		{name: "Success - First Page", page: 1, wantLen: 12, wantFirst: "1"},
		{name: "Success - Second Page", page: 2, wantLen: 12, wantFirst: "13"},
		{name: "Success - Last Partial Page", page: 3, wantLen: 6, wantFirst: "25"},
		{name: "Success - Past The End Is Empty", page: 4, wantLen: 0},
		{name: "Success - Page Zero Is Empty", page: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			page := catalog.Paginate(products, tt.page, 12)

			// Assert
			require.Len(t, page.Products, tt.wantLen)
			assert.Equal(t, 30, page.Total)
			assert.Equal(t, 3, page.TotalPages)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, page.Products[0].ID)
			}
		})
	}

	t.Run("Success - Empty Result", func(t *testing.T) {
		page := catalog.Paginate(nil, 1, 12)

		assert.NotNil(t, page.Products)
		assert.Empty(t, page.Products)
		assert.Equal(t, 0, page.TotalPages)
	})
}

func TestRun(t *testing.T) {
	products := []*models.Product{
		fixtureProduct("1", "Yamaha MT-15", yamaha, sport, 150000, nil, 4),
		fixtureProduct("2", "Honda Shadow 750", honda, cruiser, 600000, price(510000), 3),
		fixtureProduct("3", "Yamaha FZ", yamaha, sport, 120000, nil, 5),
		fixtureProduct("4", "Ducati Monster", ducati, sport, 1200000, nil, 2),
	}

	// Arrange
	q := catalog.DefaultQuery()
	q.Brands = []string{"1", "5"}
	q.Sort = models.SortPriceAsc

	// Act
	page := catalog.Run(products, q)

	// Assert
	assert.Equal(t, []string{"3", "1", "4"}, ids(page.Products))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}
