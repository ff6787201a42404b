package catalog

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

const (
	DefaultPageSize = 12
	DefaultMaxPrice = 3000000
)

// DefaultPriceRange spans every price the generator can produce.
func DefaultPriceRange() models.PriceRange {
	return models.PriceRange{Min: 0, Max: DefaultMaxPrice}
}

// DefaultQuery has no text, no filters, the full price range, featured order
// and the first page.
func DefaultQuery() models.CatalogQuery {
	return models.CatalogQuery{
		Price:    DefaultPriceRange(),
		Sort:     models.SortFeatured,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Run applies filter, sort and paginate to products in that order. It never
// fails and never modifies the input slice.
func Run(products []*models.Product, q models.CatalogQuery) models.ProductPage {
	matched := Filter(products, q)
	SortProducts(matched, q.Sort)

	return Paginate(matched, q.Page, q.PageSize)
}

// Filter returns a new slice with the products matching the text, brand,
// category and price criteria of q.
func Filter(products []*models.Product, q models.CatalogQuery) []*models.Product {
	text := strings.ToLower(q.Text)
	brands := toSet(q.Brands)
	categories := toSet(q.Categories)

	out := make([]*models.Product, 0, len(products))

	for _, p := range products {
		if text != "" && !matchesText(p, text) {
			continue
		}

		if len(brands) > 0 {
			if _, ok := brands[p.Brand.ID]; !ok {
				continue
			}
		}

		if len(categories) > 0 {
			if _, ok := categories[p.Category.ID]; !ok {
				continue
			}
		}

		if !q.Price.Contains(p.EffectivePrice()) {
			continue
		}

		out = append(out, p)
	}

	return out
}

// SortProducts orders products in place. The sort is stable so equal keys
// keep their catalog order, and SortFeatured leaves the slice untouched.
func SortProducts(products []*models.Product, key models.SortKey) {
	var compare func(a, b *models.Product) int

	switch key {
	case models.SortPriceAsc:
		compare = func(a, b *models.Product) int { return cmp.Compare(a.EffectivePrice(), b.EffectivePrice()) }
	case models.SortPriceDesc:
		compare = func(a, b *models.Product) int { return cmp.Compare(b.EffectivePrice(), a.EffectivePrice()) }
	case models.SortNewest:
		compare = func(a, b *models.Product) int { return cmp.Compare(numericID(b), numericID(a)) }
	case models.SortRating:
		compare = func(a, b *models.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		return
	}

	slices.SortStableFunc(products, compare)
}

// Paginate slices out the 1-based page. Pages outside the result yield an
// empty slice with the totals still filled in.
func Paginate(products []*models.Product, page, pageSize int) models.ProductPage {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(products)
	result := models.ProductPage{
		Products:   []*models.Product{},
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}

	if page < 1 {
		return result
	}

	start := (page - 1) * pageSize
	if start >= total {
		return result
	}

	end := min(start+pageSize, total)
	result.Products = products[start:end:end]

	return result
}

func matchesText(p *models.Product, lowered string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowered) ||
		strings.Contains(strings.ToLower(p.Brand.Name), lowered) ||
		strings.Contains(strings.ToLower(p.Category.Name), lowered)
}

func numericID(p *models.Product) int {
	n, err := strconv.Atoi(p.ID)
	if err != nil {
		return 0
	}

	return n
}

func toSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
