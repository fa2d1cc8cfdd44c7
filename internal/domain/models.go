package domain

// Product is a sellable item. Stock only moves through product creation
// and sales; rows are never deleted.
type Product struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	Stock int     `db:"stock"`
	Price float64 `db:"price"`
}

// Sale is one committed sale of a single product. Append-only.
type Sale struct {
	ID        int64   `db:"id"`
	ProductID int64   `db:"product_id"`
	Qty       int     `db:"qty"`
	Total     float64 `db:"total"`
	Date      string  `db:"date"` // YYYY-MM-DD
}

// Debt is an amount owed by a named customer. Append-only, unrelated
// to products or sales.
type Debt struct {
	ID       int64   `db:"id"`
	Customer string  `db:"customer"`
	Amount   float64 `db:"amount"`
	Date     string  `db:"date"` // YYYY-MM-DD
}

// SaleResult is what the ledger hands back after a committed sale.
// RemainingStock lets the caller decide whether to show a low-stock
// warning; nothing is stored for that.
type SaleResult struct {
	SaleID         int64
	Total          float64
	RemainingStock int
}

// SalesSummaryRow aggregates every sale of one product.
type SalesSummaryRow struct {
	ProductName string  `db:"name"`
	TotalQty    int     `db:"total_qty"`
	TotalAmount float64 `db:"total_amount"`
}

// FastMoverRow ranks a product by total units sold.
type FastMoverRow struct {
	ProductName string `db:"name"`
	TotalQty    int    `db:"total_qty"`
}
