package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/marketplace/internal/view"
	"github.com/nfrund/marketplace/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the application shell: navigation, the
// notification region and the content region. A nil content renders the
// shell with an empty content region.
func Base(title string, flashes view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var inner cmp.Node
		if content != nil {
			inner = view.AdaptTemplToGomponent(ctx, content)
		}

		return c.HTML5(c.HTML5Props{
			Title:    CalculateTitle(title),
			Language: "en",
			Head: []cmp.Node{
				g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
				g.Script(g.Src(htmxSrc), g.Defer()),
			},
			Body: []cmp.Node{
				navigation(),
				components.Notifications(flashes, false),
				g.Main(g.ID("content"), g.Class("content"), inner),
			},
		}).Render(w)
	})
}

func navigation() cmp.Node {
	return g.Nav(
		g.Class("nav"),
		g.A(g.Href("/"), g.Class("nav-home"), cmp.Text("Home")),
		g.Div(
			g.Class("nav-links"),
			g.A(g.Href("/login"), cmp.Text("Login")),
			g.A(g.Href("/signup"), cmp.Text("Signup")),
			g.A(g.Href("/admin"), cmp.Text("Admin")),
		),
	)
}
