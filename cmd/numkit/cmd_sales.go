package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numkit/internal/logging"
	"numkit/internal/report"
	"numkit/internal/sales"
)

func newSalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sales <priceCatalogue.json> <salesRecord.json>",
		Short: "Compute the total cost of sales records against a price catalogue",
		Long: `Loads a product catalogue (objects with "title" and "price") and a list of
sales (objects with "Product" and "Quantity") and prints the total cost.

Both files are JSON; .yaml and .yml files are read as YAML. Invalid catalogue
items, unknown products and invalid quantities are reported and skipped.`,
		Args: exactArgs(2, "numkit sales <priceCatalogue.json> <salesRecord.json>"),
		RunE: runSales,
	}
}

func runSales(cmd *cobra.Command, args []string) error {
	start := time.Now()
	out := cmd.OutOrStdout()
	log := logging.Get(logging.CategorySales)

	catalogue, catErr := sales.LoadFile(args[0])
	records, salesErr := sales.LoadFile(args[1])
	if err := errors.Join(catErr, salesErr); err != nil {
		log.Error("loading documents", zap.Error(err))
		return err
	}

	prices, issues := sales.BuildPriceMap(catalogue)
	total, saleIssues := sales.TotalCost(prices, records)
	for _, issue := range append(issues, saleIssues...) {
		fmt.Fprintln(out, issue)
		log.Warn("skipped entry", zap.String("issue", issue))
	}
	log.Debug("computed total", zap.Int("products", len(prices)), zap.Float64("total", total))

	rep := sales.Report(total, time.Since(start))
	return report.Emit(out, rep, cfg.ResultPath(cfg.Results.Sales), true)
}
