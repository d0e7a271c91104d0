package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"dashboard/internal/services"
	"dashboard/internal/utils"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printListing(out io.Writer, l listing) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(l.headers, "\t"))
	for _, r := range l.rows {
		last := len(r) - 1
		if len(r[last]) > 50 {
			r[last] = r[last][:47] + "..."
		}
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	w.Flush()

	if len(l.rows) == 0 {
		fmt.Fprintln(out, "(no records on this page)")
	}
	fmt.Fprintf(out, "\nPage %d of %d (%d records)\n", l.current, l.pages, l.total)
	printSummaries(out, l.summaries)
}

func printSummaries(out io.Writer, sums map[string]float64) {
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s:\t%s\n", k, formatSummary(sums[k]))
	}
	w.Flush()
}

// formatSummary prints counts without decimals.
func formatSummary(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return utils.FormatMoney(v)
}

func printFunds(out io.Writer, ov services.FundOverview) {
	fmt.Fprintf(out, "Total balance: %s   This month: %s of %s (%.0f%%)\n",
		utils.FormatUSD(ov.TotalBalance), utils.FormatUSD(ov.TotalProgress), utils.FormatUSD(ov.TotalTarget), ov.ProgressPercent)
	fmt.Fprintf(out, "Unread notifications: %d\n\n", ov.UnreadNotifications)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFUND\tBALANCE\tTARGET\tMONTH\t%\tHEALTH")
	for _, f := range ov.Funds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.0f\t%s\n",
			f.ID, f.Name, utils.FormatUSD(f.Balance), utils.FormatUSD(f.MonthlyTarget),
			utils.FormatUSD(f.CurrentMonth), f.PercentOfTarget, f.Health)
	}
	w.Flush()
}

func printOverview(out io.Writer, ov services.Overview) {
	sections := []struct {
		name string
		sums map[string]float64
	}{
		{"Courses", ov.Courses},
		{"Final-year projects", ov.FYP},
		{"Contracts", ov.Contracts},
		{"Projects", ov.Projects},
		{"Invoices", ov.Invoices},
		{"Expenses", ov.Expenses},
		{"Income", ov.Income},
	}
	for _, s := range sections {
		fmt.Fprintln(out, s.name)
		printSummaries(out, s.sums)
	}
}
