package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nimasrn/retail-normalizer/internal/model"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// parseFormat validates the --format value; empty means table.
func parseFormat(v string) (string, error) {
	switch v {
	case "", formatTable:
		return formatTable, nil
	case formatJSON:
		return formatJSON, nil
	}
	return "", fmt.Errorf("invalid --format value %q, want %s or %s", v, formatTable, formatJSON)
}

// render prints every section of r as an aligned table. run may be nil when
// the store has never been normalized.
func render(w io.Writer, run *model.NormalizationRun, r *model.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if run != nil {
		fmt.Fprintf(tw, "last run\t%s\t%s\t%s\n", run.RunID, run.Status, run.StartedAt.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Fprintln(tw, "last run\tnone")
	}

	fmt.Fprintln(tw, "\n== sales by region")
	fmt.Fprintln(tw, "region\tsales\tprofit\tlines")
	for _, row := range r.ByRegion {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", row.Region, row.TotalSales.StringFixed(2), row.TotalProfit.StringFixed(2), row.LineCount)
	}

	fmt.Fprintln(tw, "\n== sales by category")
	fmt.Fprintln(tw, "category\tsub-category\tsales\tprofit\tlines")
	for _, row := range r.ByCategory {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", row.Category, row.SubCategory, row.TotalSales.StringFixed(2), row.TotalProfit.StringFixed(2), row.LineCount)
	}

	fmt.Fprintln(tw, "\n== customer tiers")
	fmt.Fprintln(tw, "tier\tlines\tsales")
	for _, row := range r.ByTier {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", row.CustomerTier, row.LineCount, row.TotalSales.StringFixed(2))
	}

	fmt.Fprintln(tw, "\n== shipping duration by mode")
	fmt.Fprintln(tw, "ship mode\tavg days\tlines")
	for _, row := range r.ByShipMode {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\n", row.ShipMode, row.AvgDurationDays, row.LineCount)
	}

	fmt.Fprintln(tw, "\n== top customers")
	fmt.Fprintln(tw, "customer\tname\tsales\torders")
	for _, row := range r.TopCustomers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", row.CustomerID, row.CustomerName, row.TotalSales.StringFixed(2), row.OrderCount)
	}

	return tw.Flush()
}
