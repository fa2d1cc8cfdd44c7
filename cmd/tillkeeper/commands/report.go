package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	applog "tillkeeper/internal/log"
)

func newReportCmd(d *deps) *cobra.Command {
	report := &cobra.Command{
		Use:   "report",
		Short: "Aggregate reports over the sales log",
	}

	sales := &cobra.Command{
		Use:   "sales",
		Short: "Total units and amount sold per product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := d.reports.SalesSummary()
			if err != nil {
				applog.Error(d.opID, "report.sales", err, nil)
				return err
			}
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "PRODUCT\tUNITS\tAMOUNT")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\t%.2f\n", r.ProductName, r.TotalQty, r.TotalAmount)
			}
			return w.Flush()
		},
	}

	var limit int
	fast := &cobra.Command{
		Use:   "fast-movers",
		Short: "Top products ranked by units sold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := d.reports.TopFastMovers(limit)
			if err != nil {
				applog.Error(d.opID, "report.fastmovers", err, nil)
				return err
			}
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "PRODUCT\tUNITS")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%d\n", r.ProductName, r.TotalQty)
			}
			return w.Flush()
		},
	}
	fast.Flags().IntVar(&limit, "limit", 0, "number of rows (default from config)")

	report.AddCommand(sales, fast)
	return report
}
