package main

import (
	"encoding/json"
	"fmt"
	"io"
	"investordash/api"
	"investordash/internal/app"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

type productRow struct {
	ID            string  `csv:"id"`
	Name          string  `csv:"name"`
	SKU           string  `csv:"sku"`
	RevenueShare  float64 `csv:"revenue_share"`
	UnitsSold     float64 `csv:"units_sold"`
	Revenue       float64 `csv:"revenue"`
	AvgOrderValue float64 `csv:"avg_order_value"`
	ReturnRate    float64 `csv:"return_rate"`
}

func newRootCmd(overviewApp app.OverviewApp, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "overview",
		Short:        "Print the investor dashboard overview",
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(newShowCmd(overviewApp))
	rootCmd.AddCommand(newProductsCmd(overviewApp))

	return rootCmd
}

func newShowCmd(overviewApp app.OverviewApp) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print metrics, products and source as JSON",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			result := overviewApp.GetOverview(c.Context())
			return writeJson(c.OutOrStdout(), api.OverviewResponseFromDomain(result))
		},
	}
}

func newProductsCmd(overviewApp app.OverviewApp) *cobra.Command {
	var format string

	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "Print the product performance table",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			result := overviewApp.GetOverview(c.Context())
			products := api.OverviewResponseFromDomain(result).Products

			switch format {
			case "json":
				return writeJson(c.OutOrStdout(), products)
			case "csv":
				rows := make([]productRow, 0, len(products))
				for _, p := range products {
					rows = append(rows, productRow(p))
				}
				if err := gocsv.Marshal(rows, c.OutOrStdout()); err != nil {
					return fmt.Errorf("failed to write products csv: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("unsupported format %q (expected json or csv)", format)
			}
		},
	}
	productsCmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")

	return productsCmd
}

func writeJson(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
