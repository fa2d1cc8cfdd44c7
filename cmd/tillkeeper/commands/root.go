package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"tillkeeper/internal/config"
	"tillkeeper/internal/repos"
	"tillkeeper/internal/services"
)

// deps wires the store and services once per invocation; every command
// shares the same open database handle for its lifetime.
type deps struct {
	cfg     config.Config
	db      *sqlx.DB
	opID    string
	ledger  *services.LedgerService
	debts   *services.DebtService
	reports *services.ReportService
}

func newRootCmd() (*cobra.Command, *deps) {
	d := &deps{}

	root := &cobra.Command{
		Use:   "tillkeeper",
		Short: "Single-till point-of-sale ledger",
		Long: `tillkeeper tracks product inventory, records sales, logs customer
debts and produces sales reports for one till backed by one local
SQLite file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			d.cfg = config.Load()

			// Optional file logging
			if d.cfg.LogFile != "" {
				f, err := os.OpenFile(d.cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err != nil {
					log.Printf("[warn] could not open log file %s: %v", d.cfg.LogFile, err)
				} else {
					log.SetOutput(io.MultiWriter(os.Stderr, f))
				}
			}

			db, err := repos.OpenDB(d.cfg.DBDSN)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			d.db = db
			d.opID = uuid.NewString()

			d.ledger = services.NewLedgerService(repos.NewProductRepo(db), repos.NewSaleRepo(db))
			d.debts = services.NewDebtService(repos.NewDebtRepo(db))
			d.reports = services.NewReportService(repos.NewReportRepo(db), d.cfg.FastMoverLimit)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if d.db != nil {
				_ = d.db.Close()
			}
		},
	}

	root.AddCommand(
		newProductsCmd(d),
		newAddProductCmd(d),
		newSellCmd(d),
		newAddDebtCmd(d),
		newDebtsCmd(d),
		newReportCmd(d),
	)
	return root, d
}

// Execute runs the command tree and maps failures to operator-readable
// messages on stderr.
func Execute() error {
	root, _ := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", friendly(err))
		return err
	}
	return nil
}
