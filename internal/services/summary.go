package service

import (
	"math"

	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

const DefaultTaxRate = 0.18

type Pricing struct {
	TaxRate     float64
	ShippingFee float64
}

// Summarize prices a cart: shipping is a flat fee (free by default) and tax
// is TaxRate of the subtotal.
func (p Pricing) Summarize(c models.Cart) *models.OrderSummary {
	subtotal := c.TotalAmount
	shipping := p.ShippingFee
	if c.IsEmpty() {
		shipping = 0
	}

	tax := roundPaise(subtotal * p.TaxRate)
	total := roundPaise(subtotal + shipping + tax)

	return &models.OrderSummary{
		Subtotal:          subtotal,
		Shipping:          shipping,
		Tax:               tax,
		Total:             total,
		FormattedSubtotal: catalog.FormatPrice(subtotal),
		FormattedTax:      catalog.FormatPrice(tax),
		FormattedTotal:    catalog.FormatPrice(total),
	}
}

func roundPaise(amount float64) float64 {
	return math.Round(amount*100) / 100
}
