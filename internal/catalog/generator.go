package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

const (
	DefaultProductCount = 72
	DefaultSeed         = 2024

	minBasePrice  = 90000
	maxBasePrice  = 3000000
	saleDiscount  = 0.85
	saleChance    = 0.3
	featureChance = 0.1
	newChance     = 0.2
	bestChance    = 0.15
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

type GeneratorConfig struct {
	Seed  uint64
	Count int
}

// Generate builds a reproducible demo catalog. The same seed always yields
// the same products.
func Generate(cfg GeneratorConfig) []*models.Product {
	if cfg.Count <= 0 {
		cfg.Count = DefaultProductCount
	}

	g := &generator{rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))}

	products := make([]*models.Product, 0, cfg.Count)
	for i := 1; i <= cfg.Count; i++ {
		products = append(products, g.product(i))
	}

	return products
}

type generator struct {
	rng *rand.Rand
}

func (g *generator) intn(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *generator) product(i int) *models.Product {
	category := defaultCategories[g.rng.IntN(len(defaultCategories))]
	brand := defaultBrands[g.rng.IntN(len(defaultBrands))]

	templates := nameTemplates[category.ID]
	name := templates[g.rng.IntN(len(templates))]
	name = strings.Replace(name, "{brand}", brand.Name, 1)
	name = strings.Replace(name, "{year}", strconv.Itoa(2020+g.intn(0, 4)), 1)
	name = strings.Replace(name, "{series}", strconv.Itoa(g.intn(100, 1200)), 1)

	basePrice := float64(g.intn(minBasePrice, maxBasePrice))
	onSale := g.chance(saleChance)

	var salePrice *float64
	if onSale {
		discounted := math.Floor(basePrice * saleDiscount)
		salePrice = &discounted
	}

	id := strconv.Itoa(i)

	return &models.Product{
		ID:        id,
		Name:      name,
		Slug:      fmt.Sprintf("%s-%s-%d", strings.ToLower(brand.Name), slugify(name), i),
		Price:     basePrice,
		SalePrice: salePrice,
		Description: fmt.Sprintf("Experience the thrill of riding with the %s. This %s combines power, style, and cutting-edge technology for an unmatched riding experience. "+
			"Built with precision engineering and premium materials, it delivers exceptional performance on every journey.", name, strings.ToLower(category.Name)),
		Images: []models.ProductImage{
			{ID: id + "-1", URL: placeholderImage, Alt: name},
			{ID: id + "-2", URL: placeholderImage, Alt: name + " side view"},
			{ID: id + "-3", URL: placeholderImage, Alt: name + " front view"},
		},
		Brand:          brand,
		Category:       category,
		Featured:       g.chance(featureChance),
		Stock:          g.intn(0, 30),
		Rating:         g.intn(1, 5),
		Specifications: g.specifications(),
		New:            g.chance(newChance),
		Bestseller:     g.chance(bestChance),
		OnSale:         onSale,
	}
}

func (g *generator) specifications() map[string]string {
	layout := "Single Cylinder"
	if g.chance(0.5) {
		layout = "V-Twin"
	} else if g.chance(0.5) {
		layout = "Inline-4"
	}

	return map[string]string{
		models.SpecEngine:       fmt.Sprintf("%dcc %s", g.intn(150, 1300), layout),
		models.SpecPower:        fmt.Sprintf("%d bhp", g.intn(15, 220)),
		models.SpecTorque:       fmt.Sprintf("%d Nm", g.intn(15, 170)),
		models.SpecTransmission: fmt.Sprintf("%d-Speed Manual", g.intn(5, 6)),
		models.SpecWeight:       fmt.Sprintf("%d kg", g.intn(150, 350)),
		models.SpecFuelCapacity: fmt.Sprintf("%d liters", g.intn(10, 25)),
		models.SpecSeatHeight:   fmt.Sprintf("%d mm", g.intn(750, 900)),
		models.SpecTopSpeed:     fmt.Sprintf("%d km/h", g.intn(120, 340)),
	}
}

func slugify(name string) string {
	slug := nonWordPattern.ReplaceAllString(name, "")
	slug = whitespacePattern.ReplaceAllString(slug, "-")

	return strings.ToLower(slug)
}
