package catalog

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

// URL parameter names shared with the listing view.
const (
	ParamBrand    = "brand"
	ParamCategory = "category"
	ParamSort     = "sort"
	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
	ParamText     = "q"
	ParamPage     = "page"
)

// EncodeQuery flattens q into URL parameters. Only fields that differ from
// DefaultQuery are emitted.
func EncodeQuery(q models.CatalogQuery) map[string]string {
	params := make(map[string]string)

	if len(q.Brands) > 0 {
		params[ParamBrand] = strings.Join(q.Brands, ",")
	}

	if len(q.Categories) > 0 {
		params[ParamCategory] = strings.Join(q.Categories, ",")
	}

	if q.Sort != "" && q.Sort != models.SortFeatured {
		params[ParamSort] = string(q.Sort)
	}

	if q.Price != DefaultPriceRange() {
		params[ParamMinPrice] = strconv.FormatInt(int64(q.Price.Min), 10)
		params[ParamMaxPrice] = strconv.FormatInt(int64(q.Price.Max), 10)
	}

	if q.Text != "" {
		params[ParamText] = q.Text
	}

	if q.Page > 1 {
		params[ParamPage] = strconv.Itoa(q.Page)
	}

	return params
}

// DecodeQuery rebuilds a query from URL parameters. It never fails: anything
// missing or malformed falls back to the DefaultQuery value.
func DecodeQuery(params map[string]string) models.CatalogQuery {
	q := DefaultQuery()

	q.Text = params[ParamText]
	q.Brands = splitIDs(params[ParamBrand])
	q.Categories = splitIDs(params[ParamCategory])

	if sort := models.SortKey(params[ParamSort]); sort.Valid() {
		q.Sort = sort
	}

	if v, ok := parseBound(params[ParamMinPrice]); ok {
		q.Price.Min = v
	}

	if v, ok := parseBound(params[ParamMaxPrice]); ok {
		q.Price.Max = v
	}

	if q.Price.Min > q.Price.Max {
		q.Price.Min, q.Price.Max = q.Price.Max, q.Price.Min
	}

	if page, err := strconv.Atoi(params[ParamPage]); err == nil && page > 1 {
		q.Page = page
	}

	return q
}

// Values is EncodeQuery as url.Values.
func Values(q models.CatalogQuery) url.Values {
	values := url.Values{}
	for k, v := range EncodeQuery(q) {
		values.Set(k, v)
	}

	return values
}

// FromValues decodes the first value of every known key.
func FromValues(values url.Values) models.CatalogQuery {
	params := make(map[string]string, len(values))
	for k := range values {
		params[k] = values.Get(k)
	}

	return DecodeQuery(params)
}

// The mutators below return a copy of q with one field changed and the page
// reset to 1.

func WithText(q models.CatalogQuery, text string) models.CatalogQuery {
	q.Text = text
	q.Page = 1

	return q
}

func ToggleBrand(q models.CatalogQuery, brandID string) models.CatalogQuery {
	q.Brands = toggle(q.Brands, brandID)
	q.Page = 1

	return q
}

func ToggleCategory(q models.CatalogQuery, categoryID string) models.CatalogQuery {
	q.Categories = toggle(q.Categories, categoryID)
	q.Page = 1

	return q
}

func WithPriceRange(q models.CatalogQuery, r models.PriceRange) models.CatalogQuery {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}

	q.Price = r
	q.Page = 1

	return q
}

func WithSort(q models.CatalogQuery, key models.SortKey) models.CatalogQuery {
	if !key.Valid() {
		key = models.SortFeatured
	}

	q.Sort = key
	q.Page = 1

	return q
}

// ClearFilters returns to the default listing, including featured order.
// Only the page size survives.
func ClearFilters(q models.CatalogQuery) models.CatalogQuery {
	cleared := DefaultQuery()
	cleared.PageSize = q.PageSize

	return cleared
}

func WithPage(q models.CatalogQuery, page int) models.CatalogQuery {
	if page < 1 {
		page = 1
	}

	q.Page = page

	return q
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	var ids []string

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || slices.Contains(ids, part) {
			continue
		}

		ids = append(ids, part)
	}

	return ids
}

func parseBound(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0, false
	}

	return float64(v), true
}

func toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false

	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}

		out = append(out, existing)
	}

	if !found {
		out = append(out, id)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
