package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tillkeeper/internal/domain"
	"tillkeeper/internal/repos"
	"tillkeeper/internal/validate"
)

// LedgerService owns the stock invariant: a product's stock always
// equals its initial stock minus the quantities of its committed sales.
type LedgerService struct {
	Prods *repos.ProductRepo
	Sales *repos.SaleRepo

	mu sync.Mutex // serializes the sell check-and-commit
}

func NewLedgerService(prods *repos.ProductRepo, sales *repos.SaleRepo) *LedgerService {
	return &LedgerService{Prods: prods, Sales: sales}
}

type addProductInput struct {
	Name  string  `validate:"required"`
	Stock int     `validate:"gte=0"`
	Price float64 `validate:"gte=0"`
}

func (s *LedgerService) AddProduct(name string, initialStock int, unitPrice float64) (int64, error) {
	name = strings.TrimSpace(name)
	in := addProductInput{Name: name, Stock: initialStock, Price: unitPrice}
	if err := validate.Struct(in); err != nil {
		return 0, err
	}
	id, err := s.Prods.Insert(name, initialStock, unitPrice)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

type sellInput struct {
	Qty int `validate:"gt=0"`
}

// Sell decrements stock and appends the sale as one unit of work. The
// mutex plus the repo's guarded UPDATE keep the check-and-commit atomic
// even for concurrent callers, so the store never shows a sale without
// its decrement or an oversold product.
func (s *LedgerService) Sell(productID int64, qty int) (domain.SaleResult, error) {
	if err := validate.Struct(sellInput{Qty: qty}); err != nil {
		return domain.SaleResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Prods.Get(productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SaleResult{}, &domain.NotFoundError{Entity: "product", ID: productID}
		}
		return domain.SaleResult{}, fmt.Errorf("load product: %w", err)
	}
	if qty > p.Stock {
		return domain.SaleResult{}, &domain.InsufficientStockError{
			ProductID: productID, Requested: qty, Available: p.Stock,
		}
	}

	total := float64(qty) * p.Price
	saleID, err := s.Sales.Record(productID, qty, total, today())
	if err != nil {
		if errors.Is(err, repos.ErrStockConflict) {
			return domain.SaleResult{}, &domain.InsufficientStockError{
				ProductID: productID, Requested: qty, Available: p.Stock,
			}
		}
		return domain.SaleResult{}, fmt.Errorf("record sale: %w", err)
	}

	return domain.SaleResult{SaleID: saleID, Total: total, RemainingStock: p.Stock - qty}, nil
}

func (s *LedgerService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *LedgerService) Product(id int64) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, &domain.NotFoundError{Entity: "product", ID: id}
	}
	return p, err
}

// Sale dates carry no time component.
func today() string { return time.Now().Format("2006-01-02") }
