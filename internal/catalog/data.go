package catalog

import "github.com/aaravmahajanofficial/bike-storefront/internal/models"

const placeholderImage = "/placeholder.svg"

var defaultBrands = []models.Brand{
	{ID: "1", Name: "Yamaha", Logo: placeholderImage, Description: "Revs your heart. Yamaha's motorcycle range combines cutting-edge technology with sleek design."},
	{ID: "2", Name: "Honda", Logo: placeholderImage, Description: "Power of Dreams. Honda crafts motorcycles that combine reliability with innovative engineering."},
	{ID: "3", Name: "Kawasaki", Logo: placeholderImage, Description: "Let the good times roll. Kawasaki's high-performance bikes deliver unmatched thrill and power."},
	{ID: "4", Name: "Suzuki", Logo: placeholderImage, Description: "Way of Life. Suzuki motorcycles blend performance, style, and value in perfect harmony."},
	{ID: "5", Name: "Ducati", Logo: placeholderImage, Description: "Borderless passion. Ducati produces racing-inspired motorcycles with Italian design excellence."},
	{ID: "6", Name: "Harley-Davidson", Logo: placeholderImage, Description: "Freedom for the soul. Harley-Davidson creates iconic motorcycles for the ultimate riding experience."},
	{ID: "7", Name: "BMW", Logo: placeholderImage, Description: "Make life a ride. BMW Motorrad represents premium quality and innovative technology."},
	{ID: "8", Name: "Triumph", Logo: placeholderImage, Description: "For the ride. Triumph combines British heritage with modern engineering for exceptional motorcycles."},
	{ID: "9", Name: "KTM", Logo: placeholderImage, Description: "Ready to race. KTM delivers high-performance motorcycles with aggressive styling and cutting-edge tech."},
	{ID: "10", Name: "TVS", Logo: placeholderImage, Description: "Touching lives, delivering joy. TVS creates motorcycles that offer performance, quality, and value."},
}

var defaultCategories = []models.Category{
	{ID: "1", Name: "Sport Bikes", Slug: "sport-bikes"},
	{ID: "2", Name: "Cruisers", Slug: "cruisers"},
	{ID: "3", Name: "Adventure Bikes", Slug: "adventure-bikes"},
	{ID: "4", Name: "Naked Bikes", Slug: "naked-bikes"},
	{ID: "5", Name: "Touring Bikes", Slug: "touring-bikes"},
	{ID: "6", Name: "Off-Road Bikes", Slug: "off-road-bikes"},
	{ID: "7", Name: "Electric Bikes", Slug: "electric-bikes"},
}

// name templates per category id
var nameTemplates = map[string][]string{
	"1": {"{brand} Fireblade {year}", "{brand} Ninja {year}", "{brand} GSX-R {series}", "{brand} YZF-R{series}", "{brand} Panigale V{series}", "{brand} CBR {series}RR"},
	"2": {"{brand} Road King {year}", "{brand} Shadow {series}", "{brand} Vulcan {series}", "{brand} Thunderbird {year}", "{brand} Fat Boy {year}", "{brand} Boulevard {series}"},
	"3": {"{brand} GS {series}", "{brand} Africa Twin {year}", "{brand} Tiger {series}", "{brand} Himalayan {year}", "{brand} Adventure {series}", "{brand} Ténéré {series}"},
	"4": {"{brand} Z{series}", "{brand} Street Triple {series}", "{brand} MT-{series}", "{brand} Monster {series}", "{brand} Duke {series}", "{brand} CB{series}R"},
	"5": {"{brand} Gold Wing {year}", "{brand} Electra Glide {year}", "{brand} FJR{series}", "{brand} K {series} GT", "{brand} Multistrada {series}", "{brand} Versys {series}"},
	"6": {"{brand} CRF {series}", "{brand} KLX {series}", "{brand} EXC {series}", "{brand} WR {series}F", "{brand} DR-Z {series}", "{brand} RM-Z {series}"},
	"7": {"{brand} LiveWire {year}", "{brand} Zero SR {series}", "{brand} Energica Ego {year}", "{brand} Vector {year}", "{brand} EVision {series}", "{brand} Ultraviolette F{series}"},
}

// Brands returns the fixed brand list.
func Brands() []models.Brand {
	return append([]models.Brand(nil), defaultBrands...)
}

// Categories returns the fixed category list.
func Categories() []models.Category {
	return append([]models.Category(nil), defaultCategories...)
}
