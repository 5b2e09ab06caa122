package pages

import (
	"github.com/nfrund/marketplace/internal/view/dto/catalog"
	"github.com/nfrund/marketplace/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home is the landing page listing the featured products.
func Home(data catalog.HomeData) cmp.Node {
	return g.Section(
		g.H2(cmp.Text("Products")),
		components.FeaturedList(data.Products),
	)
}
