package catalog

import (
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

const relatedLimit = 4

// Catalog is the read-only product set built once at startup. Nothing it
// hands out may be mutated by callers.
type Catalog struct {
	products   []*models.Product
	brands     []models.Brand
	categories []models.Category

	byID   map[string]*models.Product
	bySlug map[string]*models.Product
}

func New(products []*models.Product, brands []models.Brand, categories []models.Category) *Catalog {
	c := &Catalog{
		products:   products,
		brands:     brands,
		categories: categories,
		byID:       make(map[string]*models.Product, len(products)),
		bySlug:     make(map[string]*models.Product, len(products)),
	}

	for _, p := range products {
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p
	}

	return c
}

// NewGenerated builds the demo catalog from the fixed brands and categories.
func NewGenerated(cfg GeneratorConfig) *Catalog {
	return New(Generate(cfg), Brands(), Categories())
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []*models.Product {
	return append([]*models.Product(nil), c.products...)
}

func (c *Catalog) Brands() []models.Brand {
	return append([]models.Brand(nil), c.brands...)
}

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) ProductByID(id string) (*models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) ProductBySlug(slug string) (*models.Product, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

func (c *Catalog) BrandByID(id string) (*models.Brand, bool) {
	for i := range c.brands {
		if c.brands[i].ID == id {
			b := c.brands[i]
			return &b, true
		}
	}

	return nil, false
}

func (c *Catalog) CategoryBySlug(slug string) (*models.Category, bool) {
	for i := range c.categories {
		if c.categories[i].Slug == slug {
			cat := c.categories[i]
			return &cat, true
		}
	}

	return nil, false
}

func (c *Catalog) ByCategory(categoryID string) []*models.Product {
	return c.where(func(p *models.Product) bool { return p.Category.ID == categoryID })
}

func (c *Catalog) ByBrand(brandID string) []*models.Product {
	return c.where(func(p *models.Product) bool { return p.Brand.ID == brandID })
}

func (c *Catalog) Featured() []*models.Product {
	return c.where(func(p *models.Product) bool { return p.Featured })
}

func (c *Catalog) NewArrivals() []*models.Product {
	return c.where(func(p *models.Product) bool { return p.New })
}

func (c *Catalog) Bestsellers() []*models.Product {
	return c.where(func(p *models.Product) bool { return p.Bestseller })
}

func (c *Catalog) OnSale() []*models.Product {
	return c.where(func(p *models.Product) bool { return p.OnSale })
}

// Related returns up to four other products from the same category.
func (c *Catalog) Related(product *models.Product) []*models.Product {
	related := make([]*models.Product, 0, relatedLimit)

	for _, p := range c.products {
		if len(related) == relatedLimit {
			break
		}

		if p.Category.ID == product.Category.ID && p.ID != product.ID {
			related = append(related, p)
		}
	}

	return related
}

func (c *Catalog) where(keep func(*models.Product) bool) []*models.Product {
	out := make([]*models.Product, 0)

	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out
}
