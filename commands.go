package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ironingangels/services"
)

func newCatalogCommand(cat *services.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the price list grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for i, g := range cat.GroupedByCategory() {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, g.Category.Title())
				for _, it := range g.Items {
					fmt.Fprintf(out, "  %-16s %-30s %s\n", it.ID, it.Name, services.PriceLabel(it))
				}
			}
			return nil
		},
	}
}

func newQuoteCommand(cat *services.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:     "quote id=qty [id=qty...]",
		Short:   "Estimate the price of a set of items",
		Example: "  ironingangels quote adult-10=3 work-shirt=1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est := services.NewEstimator(cat)
			for _, arg := range args {
				id, qty, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid argument %q: expected id=qty", arg)
				}
				if err := est.SetQuantity(strings.TrimSpace(id), qty); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if !est.HasAnyItems() {
				fmt.Fprintln(out, "No items selected.")
			}
			fmt.Fprintln(out, services.BuildQuoteSummary(est).String())
			return nil
		},
	}
}
