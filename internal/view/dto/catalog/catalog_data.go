package catalog

import "github.com/nfrund/marketplace/internal/domain"

// HomeData is the view model for the home page.
type HomeData struct {
	Products []domain.Product
}

// AdminData is the admin view's state: the product list and the add form.
type AdminData struct {
	Products      []domain.Product
	Form          domain.ProductForm
	Authenticated bool
}

// Loaded replaces the product list wholesale with products.
func (d AdminData) Loaded(products []domain.Product) AdminData {
	d.Products = append([]domain.Product(nil), products...)
	return d
}

// Added appends p after the existing entries and clears the form.
func (d AdminData) Added(p domain.Product) AdminData {
	products := make([]domain.Product, 0, len(d.Products)+1)
	products = append(products, d.Products...)
	d.Products = append(products, p)
	d.Form = domain.ProductForm{}
	return d
}
