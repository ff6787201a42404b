package catalog_test

import (
	"strconv"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

var (
	yamaha  = models.Brand{ID: "1", Name: "Yamaha"}
	honda   = models.Brand{ID: "2", Name: "Honda"}
	ducati  = models.Brand{ID: "5", Name: "Ducati"}
	sport   = models.Category{ID: "1", Name: "Sport Bikes", Slug: "sport-bikes"}
	cruiser = models.Category{ID: "2", Name: "Cruisers", Slug: "cruisers"}
)

func price(v float64) *float64 {
	return &v
}

func fixtureProduct(id, name string, brand models.Brand, category models.Category, base float64, sale *float64, rating int) *models.Product {
	return &models.Product{
		ID:        id,
		Name:      name,
		Slug:      "slug-" + id,
		Price:     base,
		SalePrice: sale,
		Brand:     brand,
		Category:  category,
		Rating:    rating,
		OnSale:    sale != nil,
	}
}

func ids(products []*models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}

	return out
}

func manyProducts(n int) []*models.Product {
	products := make([]*models.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, fixtureProduct(strconv.Itoa(i), "Bike", yamaha, sport, float64(i*1000), nil, 3))
	}

	return products
}
