package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/nfrund/marketplace/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// ProductListID is the id of the admin product list, the htmx append target.
const ProductListID = "product-list"

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a price for display, e.g. "$1,299.5". The whole part
// is grouped; the fraction keeps every digit the price carries.
func FormatPrice(p domain.Price) string {
	f := float64(p)
	sign := ""
	if math.Signbit(f) && f != 0 {
		sign = "-"
	}
	whole := pricePrinter.Sprint(number.Decimal(math.Trunc(math.Abs(f)), number.MaxFractionDigits(0)))
	if _, frac, ok := strings.Cut(p.String(), "."); ok {
		return "$" + sign + whole + "." + frac
	}
	return "$" + sign + whole
}

// FeaturedList renders the home page list with emphasized names.
func FeaturedList(products []domain.Product) cmp.Node {
	return g.Ul(
		g.Class("products"),
		cmp.Map(products, func(p domain.Product) cmp.Node {
			return g.Li(g.Strong(cmp.Text(p.Name)), cmp.Text(" - "+FormatPrice(p.Price)))
		}),
	)
}

// ProductList renders the admin product list.
func ProductList(products []domain.Product) cmp.Node {
	return g.Ul(
		g.ID(ProductListID),
		g.Class("products"),
		cmp.Map(products, ProductItem),
	)
}

// ProductItem renders one admin list entry.
func ProductItem(p domain.Product) cmp.Node {
	return g.Li(
		cmp.Attr("data-id", strconv.Itoa(p.ID)),
		cmp.Text(p.Name+" - "+FormatPrice(p.Price)),
	)
}
