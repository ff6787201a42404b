package main

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/aaravmahajanofficial/bike-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
	service "github.com/aaravmahajanofficial/bike-storefront/internal/services"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	seed     uint64
	count    int
	pageSize int
}

func (o *rootOptions) catalogService() service.CatalogService {
	c := catalog.NewGenerated(catalog.GeneratorConfig{Seed: o.seed, Count: o.count})
	return service.NewCatalogService(c, o.pageSize)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "storefront-cli",
		Short:         "Browse the generated bike catalog offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", catalog.DefaultSeed, "Catalog generator seed")
	rootCmd.PersistentFlags().IntVar(&opts.count, "count", catalog.DefaultProductCount, "Number of generated products")
	rootCmd.PersistentFlags().IntVar(&opts.pageSize, "page-size", catalog.DefaultPageSize, "Products per page")

	rootCmd.AddCommand(newProductsCmd(opts))
	rootCmd.AddCommand(newProductCmd(opts))
	rootCmd.AddCommand(newBrandsCmd(opts))
	rootCmd.AddCommand(newCategoriesCmd(opts))

	return rootCmd
}

// productFlags maps CLI flags onto the listing URL parameters so both
// surfaces decode queries the same way.
var productFlags = []struct {
	flag  string
	param string
	usage string
}{
	{"q", catalog.ParamText, "Search text"},
	{"brand", catalog.ParamBrand, "Comma separated brand ids"},
	{"category", catalog.ParamCategory, "Comma separated category ids"},
	{"min-price", catalog.ParamMinPrice, "Lower price bound"},
	{"max-price", catalog.ParamMaxPrice, "Upper price bound"},
	{"sort", catalog.ParamSort, "featured, priceAsc, priceDesc, newest or rating"},
	{"page", catalog.ParamPage, "Page number"},
}

func newProductsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List a page of products",
		Long: `List products filtered, sorted and paginated exactly like
GET /api/v1/products. Malformed values fall back to their defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := url.Values{}
			for _, f := range productFlags {
				if cmd.Flags().Changed(f.flag) {
					v, _ := cmd.Flags().GetString(f.flag)
					values.Set(f.param, v)
				}
			}

			resp, err := opts.catalogService().ListProducts(context.Background(), catalog.FromValues(values))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBRAND\tCATEGORY\tPRICE\tSTOCK")
			for _, p := range resp.Products {
				price := catalog.FormatPrice(p.EffectivePrice())
				if p.SalePrice != nil {
					price += " (sale)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Brand.Name, p.Category.Name, price, p.Stock)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nPage %d of %d (%d products)\n", resp.Page, resp.TotalPages, resp.Total)
			if query := catalog.Values(resp.Query).Encode(); query != "" {
				fmt.Fprintf(out, "Query: ?%s\n", query)
			}

			return nil
		},
	}

	for _, f := range productFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}

	return cmd
}

func newProductCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "product <slug>",
		Short: "Show one product with its related bikes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := opts.catalogService().GetProduct(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			p := detail.Product
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.Slug)
			fmt.Fprintf(out, "%s / %s\n", p.Brand.Name, p.Category.Name)
			fmt.Fprintf(out, "Price: %s", detail.FormattedPrice)
			if p.SalePrice != nil {
				fmt.Fprintf(out, " (was %s)", catalog.FormatPrice(p.Price))
			}
			fmt.Fprintf(out, "\nRating: %s\nStock: %d\n", strings.Repeat("*", p.Rating), p.Stock)

			keys := make([]string, 0, len(p.Specifications))
			for k := range p.Specifications {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			for _, k := range keys {
				fmt.Fprintf(out, "  %-14s %s\n", k, p.Specifications[k])
			}

			if len(detail.Related) > 0 {
				fmt.Fprintln(out, "Related:")
				for _, r := range detail.Related {
					fmt.Fprintf(out, "  %s\n", r.Slug)
				}
			}

			return nil
		},
	}
}

func newBrandsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List brands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTable(cmd, "ID\tNAME", opts.catalogService().ListBrands(context.Background()), func(b models.Brand) string {
				return b.ID + "\t" + b.Name
			})
		},
	}
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTable(cmd, "ID\tSLUG\tNAME", opts.catalogService().ListCategories(context.Background()), func(c models.Category) string {
				return c.ID + "\t" + c.Slug + "\t" + c.Name
			})
		},
	}
}

func printTable[T any](cmd *cobra.Command, header string, rows []T, format func(T) string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, row := range rows {
		fmt.Fprintln(w, format(row))
	}

	return w.Flush()
}
