// Package events declares the storefront's typed events and the helpers that
// publish and audit them.
package events

import (
	"github.com/nfrund/marketplace/internal/domain"
	"github.com/nfrund/marketplace/internal/pubsub"
)

// Account identifies the person behind a login or signup.
type Account struct {
	Email string `json:"email"`
}

// Product is the payload of ProductCreated.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func productPayload(p domain.Product) Product {
	return Product{ID: p.ID, Name: p.Name, Price: float64(p.Price)}
}

var (
	LoginSucceeded  = pubsub.NewEvent[Account]("storefront.login.succeeded", "A login returned a token")
	SignupCompleted = pubsub.NewEvent[Account]("storefront.signup.completed", "The marketplace accepted a signup")
	ProductCreated  = pubsub.NewEvent[Product]("storefront.product.created", "The marketplace created a product from the admin form")
)
