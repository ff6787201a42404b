package models

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "priceAsc"
	SortPriceDesc SortKey = "priceDesc"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

func (s SortKey) Valid() bool {
	switch s {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return true
	}

	return false
}

// PriceRange is an inclusive [Min, Max] interval over effective prices.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

type CatalogQuery struct {
	Text       string     `json:"q"`
	Brands     []string   `json:"brands"`
	Categories []string   `json:"categories"`
	Price      PriceRange `json:"price"`
	Sort       SortKey    `json:"sort"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
}

type ProductPage struct {
	Products   []*Product `json:"products"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}

type ProductListResponse struct {
	ProductPage
	Query  CatalogQuery      `json:"query"`
	Params map[string]string `json:"params"`
}
