package services

import (
	"fmt"
	"strings"

	"tillkeeper/internal/domain"
	"tillkeeper/internal/repos"
	"tillkeeper/internal/validate"
)

type DebtService struct {
	Debts *repos.DebtRepo
}

func NewDebtService(debts *repos.DebtRepo) *DebtService {
	return &DebtService{Debts: debts}
}

type addDebtInput struct {
	Customer string `validate:"required"`
}

// AddDebt appends a debt entry dated today. Amount sign is not
// constrained by the domain.
func (s *DebtService) AddDebt(customer string, amount float64) (int64, error) {
	customer = strings.TrimSpace(customer)
	if err := validate.Struct(addDebtInput{Customer: customer}); err != nil {
		return 0, err
	}
	id, err := s.Debts.Insert(customer, amount, today())
	if err != nil {
		return 0, fmt.Errorf("insert debt: %w", err)
	}
	return id, nil
}

func (s *DebtService) ListDebts() ([]domain.Debt, error) {
	return s.Debts.List()
}
