package models

type Brand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Specification keys used by the catalog. All of them are optional.
const (
	SpecEngine       = "engine"
	SpecPower        = "power"
	SpecTorque       = "torque"
	SpecTransmission = "transmission"
	SpecWeight       = "weight"
	SpecFuelCapacity = "fuelCapacity"
	SpecSeatHeight   = "seatHeight"
	SpecTopSpeed     = "topSpeed"
)

type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Price          float64           `json:"price"`
	SalePrice      *float64          `json:"salePrice,omitempty"`
	Description    string            `json:"description"`
	Images         []ProductImage    `json:"images"`
	Brand          Brand             `json:"brand"`
	Category       Category          `json:"category"`
	Featured       bool              `json:"featured"`
	Stock          int               `json:"stock"`
	Rating         int               `json:"rating"`
	Specifications map[string]string `json:"specifications"`
	New            bool              `json:"new"`
	Bestseller     bool              `json:"bestseller"`
	OnSale         bool              `json:"onSale"`
}

// EffectivePrice is the sale price when one is set, otherwise the base price.
func (p *Product) EffectivePrice() float64 {
	if p.SalePrice != nil && *p.SalePrice > 0 {
		return *p.SalePrice
	}

	return p.Price
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

type ProductDetailResponse struct {
	Product        *Product   `json:"product"`
	Related        []*Product `json:"related"`
	FormattedPrice string     `json:"formattedPrice"`
}
