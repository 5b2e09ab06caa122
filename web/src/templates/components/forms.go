package components

import (
	"github.com/nfrund/marketplace/internal/domain"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// ProductFormID is the id of the admin add form.
const ProductFormID = "add-product-form"

// CredentialsForm renders the email/password form shared by login and
// signup. Both fields are free text; the API decides what it accepts. Only
// the email is echoed back after a failed attempt.
func CredentialsForm(action, submit, email string) cmp.Node {
	return g.Form(
		g.Method("post"),
		g.Action(action),
		g.Class("form"),
		g.Input(g.Type("text"), g.Name("email"), g.Placeholder("Email"), g.Value(email)),
		g.Input(g.Type("password"), g.Name("password"), g.Placeholder("Password")),
		g.Button(g.Type("submit"), cmp.Text(submit)),
	)
}

// ProductForm renders the admin add form. The plain form post works without
// JavaScript; htmx upgrades it to append the created item in place. With oob
// set the form is marked for an out-of-band swap.
func ProductForm(form domain.ProductForm, oob bool) cmp.Node {
	return g.Form(
		g.ID(ProductFormID),
		g.Method("post"),
		g.Action("/admin/products"),
		g.Class("form"),
		hx.Post("/admin/products"),
		hx.Target("#"+ProductListID),
		hx.Swap("beforeend"),
		cmp.Attr("hx-disabled-elt", "find button"),
		cmp.If(oob, hx.SwapOOB("true")),
		g.Input(g.Type("text"), g.Name("name"), g.Placeholder("Product name"), g.Value(form.Name)),
		g.Input(g.Type("text"), g.Name("price"), g.Placeholder("Price"), g.Value(form.Price)),
		g.Button(g.Type("submit"), cmp.Text("Add")),
	)
}
