package repos

import (
	"github.com/jmoiron/sqlx"

	"tillkeeper/internal/domain"
)

type DebtRepo struct{ db *sqlx.DB }

func NewDebtRepo(db *sqlx.DB) *DebtRepo { return &DebtRepo{db: db} }

func (r *DebtRepo) Insert(customer string, amount float64, date string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO debts(customer, amount, date) VALUES(?, ?, ?)
	`, customer, amount, date)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *DebtRepo) List() ([]domain.Debt, error) {
	var out []domain.Debt
	err := r.db.Select(&out, `SELECT id, customer, amount, date FROM debts ORDER BY id`)
	return out, err
}
