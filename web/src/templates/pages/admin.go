package pages

import (
	"github.com/nfrund/marketplace/internal/view/dto/catalog"
	"github.com/nfrund/marketplace/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Admin is the product management page: the add form followed by the list.
func Admin(data catalog.AdminData) cmp.Node {
	return g.Section(
		g.H2(cmp.Text("Admin Dashboard")),
		cmp.If(!data.Authenticated,
			g.P(g.Class("hint"), cmp.Text("You are not logged in. Adding products will be rejected by the marketplace.")),
		),
		components.ProductForm(data.Form, false),
		components.ProductList(data.Products),
	)
}
