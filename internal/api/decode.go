package api

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/marketplace/internal/domain"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 1 << 20

// validatorInstance is shared; the validator caches struct metadata.
var validatorInstance = validator.New()

// productWire mirrors the product JSON with pointer fields so that a missing
// key can be told apart from a zero value.
type productWire struct {
	ID    *int          `json:"id" validate:"required"`
	Name  *string       `json:"name" validate:"required"`
	Price *domain.Price `json:"price" validate:"required"`
}

func (w productWire) toDomain() domain.Product {
	return domain.Product{ID: *w.ID, Name: *w.Name, Price: *w.Price}
}

// loginWire is the login response. Only the token is read.
type loginWire struct {
	Token *string `json:"token"`
}

// decodeJSON reads the body into dst. Any read or syntax error is reported as
// ErrMalformedResponse.
func decodeJSON(op string, body io.Reader, dst any) error {
	if err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrMalformedResponse, err)
	}
	return nil
}

func decodeProduct(op string, body io.Reader) (domain.Product, error) {
	var w productWire
	if err := decodeJSON(op, body, &w); err != nil {
		return domain.Product{}, err
	}
	if err := validatorInstance.Struct(w); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w: %v", op, ErrMalformedResponse, err)
	}
	return w.toDomain(), nil
}

func decodeProducts(op string, body io.Reader) ([]domain.Product, error) {
	var wires []productWire
	if err := decodeJSON(op, body, &wires); err != nil {
		return nil, err
	}
	if wires == nil {
		// A JSON null is not a list.
		return nil, fmt.Errorf("%s: %w: expected an array", op, ErrMalformedResponse)
	}

	products := make([]domain.Product, 0, len(wires))
	for i, w := range wires {
		if err := validatorInstance.Struct(w); err != nil {
			return nil, fmt.Errorf("%s: %w: item %d: %v", op, ErrMalformedResponse, i, err)
		}
		products = append(products, w.toDomain())
	}
	return products, nil
}
