package catalog

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupeeSymbol = "₹"

var indianEnglish = language.MustParse("en-IN")

// FormatPrice renders amount as whole Indian rupees, e.g. "₹1,25,000".
func FormatPrice(amount float64) string {
	p := message.NewPrinter(indianEnglish)
	rounded := math.Round(amount)

	if rounded < 0 {
		return "-" + rupeeSymbol + p.Sprint(number.Decimal(-rounded, number.MaxFractionDigits(0)))
	}

	return rupeeSymbol + p.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
}
