package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Product is a catalog entry as exchanged with the marketplace API.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Price is a product price. It decodes from a JSON number or from a numeric
// JSON string, since the admin form submits prices as text and the API may
// echo them back either way.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidPrice)
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
		}
		v, err := ParsePrice(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	return p.set(f)
}

// set stores f, rejecting values that cannot be written back as JSON.
func (p *Price) set(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, f)
	}
	*p = Price(f)
	return nil
}

// String renders the price without trailing zeros, e.g. "99" or "149.5".
func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// ParsePrice reads a finite price from text.
func ParsePrice(s string) (Price, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	var p Price
	if err := p.set(f); err != nil {
		return 0, err
	}
	return p, nil
}

// ProductForm is the admin "add product" form. Price stays the text the user
// typed and is sent to the API unchanged.
type ProductForm struct {
	Name  string `json:"name" form:"name"`
	Price string `json:"price" form:"price"`
}

// FeaturedProducts returns the fixed catalog shown on the home page.
func FeaturedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Test Product", Price: 99},
		{ID: 2, Name: "Another Product", Price: 149},
	}
}
