package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	applog "tillkeeper/internal/log"
)

func newProductsCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List all products with id, name, stock and price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prods, err := d.ledger.ListProducts()
			if err != nil {
				applog.Error(d.opID, "product.list", err, nil)
				return err
			}
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tSTOCK\tPRICE")
			for _, p := range prods {
				fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\n", p.ID, p.Name, p.Stock, p.Price)
			}
			return w.Flush()
		},
	}
}

func newAddProductCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "add-product <name> <stock> <price>",
		Short: "Add a product to the inventory",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := parseInt("stock", args[1])
			if err != nil {
				return err
			}
			price, err := parseAmount("price", args[2])
			if err != nil {
				return err
			}
			id, err := d.ledger.AddProduct(args[0], stock, price)
			if err != nil {
				applog.Error(d.opID, "product.add", err, nil)
				return err
			}
			applog.Audit(d.opID, "product.add", map[string]any{
				"product_id": id, "name": args[0], "stock": stock, "price": price,
			})
			cmd.Printf("product %d added\n", id)
			return nil
		},
	}
}

func newSellCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <product-id> <qty>",
		Short: "Sell units of a product and record the sale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parseID(args[0])
			if err != nil {
				return err
			}
			qty, err := parseInt("qty", args[1])
			if err != nil {
				return err
			}
			res, err := d.ledger.Sell(pid, qty)
			if err != nil {
				applog.Error(d.opID, "sale.record", err, map[string]any{
					"product_id": pid, "qty": qty,
				})
				return err
			}
			applog.Audit(d.opID, "sale.record", map[string]any{
				"sale_id": res.SaleID, "product_id": pid, "qty": qty, "total": res.Total,
			})
			cmd.Printf("sold %d units for %.2f, %d left in stock\n", qty, res.Total, res.RemainingStock)
			if res.RemainingStock <= d.cfg.LowStockThreshold {
				cmd.Printf("warning: stock is low (%d left)\n", res.RemainingStock)
			}
			return nil
		},
	}
}
