package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	applog "tillkeeper/internal/log"
)

func newAddDebtCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "add-debt <customer> <amount>",
		Short: "Record an amount owed by a customer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}
			id, err := d.debts.AddDebt(args[0], amount)
			if err != nil {
				applog.Error(d.opID, "debt.add", err, nil)
				return err
			}
			applog.Audit(d.opID, "debt.add", map[string]any{
				"debt_id": id, "customer": args[0], "amount": amount,
			})
			cmd.Printf("debt %d recorded for %s\n", id, args[0])
			return nil
		},
	}
}

func newDebtsCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "debts",
		Short: "List the debt register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			debts, err := d.debts.ListDebts()
			if err != nil {
				applog.Error(d.opID, "debt.list", err, nil)
				return err
			}
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tCUSTOMER\tAMOUNT\tDATE")
			for _, dt := range debts {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n", dt.ID, dt.Customer, dt.Amount, dt.Date)
			}
			return w.Flush()
		},
	}
}
