package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/marketplace/internal/domain"
	"github.com/samber/lo"
)

// Formats accepted by WriteProducts.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ProductDisplay is the JSON shape of a product.
type ProductDisplay struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ValidFormat reports whether format is supported.
func ValidFormat(format string) bool {
	return format == FormatTable || format == FormatJSON
}

// WriteProducts writes products in the requested format.
func WriteProducts(w io.Writer, format string, products []domain.Product) error {
	switch format {
	case FormatJSON:
		return writeProductsJSON(w, products)
	case FormatTable, "":
		return writeProductsTable(w, products)
	default:
		return fmt.Errorf("unknown format %q, expected %s or %s", format, FormatTable, FormatJSON)
	}
}

func writeProductsTable(w io.Writer, products []domain.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	fmt.Fprintln(tw, "--\t----\t-----")
	if len(products) == 0 {
		fmt.Fprintln(tw, "No products found")
	}
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, truncateString(p.Name, 40), p.Price)
	}
	return tw.Flush()
}

func writeProductsJSON(w io.Writer, products []domain.Product) error {
	displays := lo.Map(products, func(p domain.Product, _ int) ProductDisplay {
		return ProductDisplay{ID: p.ID, Name: p.Name, Price: float64(p.Price)}
	})

	out := struct {
		Products []ProductDisplay `json:"products"`
		Count    int              `json:"count"`
	}{
		Products: displays,
		Count:    len(displays),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// truncateString shortens s to maxLen runes, marking the cut with "...".
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return strings.TrimSpace(string(runes[:maxLen-3])) + "..."
}
