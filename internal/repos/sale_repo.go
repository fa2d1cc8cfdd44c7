package repos

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"tillkeeper/internal/domain"
)

// ErrStockConflict reports that the guarded decrement matched no row:
// the product is gone or its stock dropped below the requested quantity
// after the caller's read.
var ErrStockConflict = errors.New("stock decrement rejected")

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// Record decrements stock and appends the sale row as one transaction.
// The UPDATE carries a stock >= qty guard so the pair commits only if
// the stock check still holds at write time; on any failure the
// transaction rolls back and neither effect is visible.
func (r *SaleRepo) Record(productID int64, qty int, total float64, date string) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE products SET stock = stock - ?
		WHERE id = ? AND stock >= ?
	`, qty, productID, qty)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrStockConflict
	}

	res, err = tx.Exec(`
		INSERT INTO sales(product_id, qty, total, date) VALUES(?, ?, ?, ?)
	`, productID, qty, total, date)
	if err != nil {
		return 0, err
	}
	saleID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return saleID, nil
}

func (r *SaleRepo) List() ([]domain.Sale, error) {
	var out []domain.Sale
	err := r.db.Select(&out, `SELECT id, product_id, qty, total, date FROM sales ORDER BY id`)
	return out, err
}

// SoldQty sums committed sale quantities for one product.
func (r *SaleRepo) SoldQty(productID int64) (int, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COALESCE(SUM(qty), 0) FROM sales WHERE product_id = ?
	`, productID)
	return n, err
}
