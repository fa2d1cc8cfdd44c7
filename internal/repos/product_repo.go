package repos

import (
	"github.com/jmoiron/sqlx"

	"tillkeeper/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Insert persists a new product and returns its assigned id.
func (r *ProductRepo) Insert(name string, stock int, price float64) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO products(name, stock, price) VALUES(?, ?, ?)
	`, name, stock, price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Get returns sql.ErrNoRows (via sqlx.Get) when the id is unknown.
func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT id, name, stock, price FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT id, name, stock, price FROM products ORDER BY id`)
	return out, err
}
