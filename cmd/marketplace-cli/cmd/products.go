package cmd

import (
	"fmt"

	"github.com/nfrund/marketplace/cmd/marketplace-cli/internal/output"
	"github.com/nfrund/marketplace/internal/domain"
	"github.com/spf13/cobra"
)

func newProductsCmd(resolve func() (*environment, error)) *cobra.Command {
	c := &cobra.Command{
		Use:   "products",
		Short: "List and add marketplace products",
	}
	c.AddCommand(newProductsListCmd(resolve), newProductsAddCmd(resolve))
	return c
}

func newProductsListCmd(resolve func() (*environment, error)) *cobra.Command {
	var format string
	c := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Long: `List all products in the marketplace.

Examples:
  marketplace-cli products list                 # table format
  marketplace-cli products list --format json   # JSON format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !output.ValidFormat(format) {
				return fmt.Errorf("invalid format %q, valid formats: table, json", format)
			}
			env, err := resolve()
			if err != nil {
				return err
			}
			products, err := env.client.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			return output.WriteProducts(out(cmd), format, products)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", output.FormatTable, "output format (table|json)")
	return c
}

func newProductsAddCmd(resolve func() (*environment, error)) *cobra.Command {
	var (
		form   domain.ProductForm
		format string
	)
	c := &cobra.Command{
		Use:   "add",
		Short: "Add a product using the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !output.ValidFormat(format) {
				return fmt.Errorf("invalid format %q, valid formats: table, json", format)
			}
			env, err := resolve()
			if err != nil {
				return err
			}
			sess, err := env.tokens.Load()
			if err != nil {
				return err
			}
			product, err := env.client.CreateProduct(cmd.Context(), sess, form)
			if err != nil {
				return err
			}
			return output.WriteProducts(out(cmd), format, []domain.Product{product})
		},
	}
	c.Flags().StringVar(&form.Name, "name", "", "product name")
	c.Flags().StringVar(&form.Price, "price", "", "product price")
	c.Flags().StringVarP(&format, "format", "f", output.FormatTable, "output format (table|json)")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("price")
	return c
}
