package repos

import (
	"github.com/jmoiron/sqlx"

	"tillkeeper/internal/domain"
)

type ReportRepo struct{ db *sqlx.DB }

func NewReportRepo(db *sqlx.DB) *ReportRepo { return &ReportRepo{db: db} }

// SalesSummary returns one row per product with at least one sale,
// ordered by product id so identical data always yields identical rows.
func (r *ReportRepo) SalesSummary() ([]domain.SalesSummaryRow, error) {
	var rows []domain.SalesSummaryRow
	err := r.db.Select(&rows, `
		SELECT p.name, SUM(s.qty) AS total_qty, SUM(s.total) AS total_amount
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.id
		ORDER BY p.id
	`)
	return rows, err
}

// FastMovers ranks products by units sold, ties broken by the lower
// product id, truncated to limit.
func (r *ReportRepo) FastMovers(limit int) ([]domain.FastMoverRow, error) {
	var rows []domain.FastMoverRow
	err := r.db.Select(&rows, `
		SELECT p.name, SUM(s.qty) AS total_qty
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.id
		ORDER BY total_qty DESC, p.id ASC
		LIMIT ?
	`, limit)
	return rows, err
}
