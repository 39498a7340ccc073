package usecase

import (
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

// FinanceUseCase registra gastos e ingresos con snapshot del nombre de su
// categoría al momento del registro.
type FinanceUseCase struct {
	expenseRepo repository.ExpenseRepository
	incomeRepo  repository.IncomeRepository
	expCatRepo  repository.CategoryRepository
	incCatRepo  repository.CategoryRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(
	expenseRepo repository.ExpenseRepository,
	incomeRepo repository.IncomeRepository,
	expCatRepo repository.CategoryRepository,
	incCatRepo repository.CategoryRepository,
) *FinanceUseCase {
	return &FinanceUseCase{
		expenseRepo: expenseRepo,
		incomeRepo:  incomeRepo,
		expCatRepo:  expCatRepo,
		incCatRepo:  incCatRepo,
	}
}

func (uc *FinanceUseCase) validate(in dto.FinanceEntryRequest) error {
	if in.Description == "" {
		return fmt.Errorf("%w: descripción vacía", domain.ErrInvalidInput)
	}
	if in.Amount.IsNegative() {
		return fmt.Errorf("%w: monto negativo", domain.ErrInvalidInput)
	}
	return nil
}

// AddExpense registra un gasto.
func (uc *FinanceUseCase) AddExpense(in dto.FinanceEntryRequest) (*entity.Expense, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	category, err := uc.expCatRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría de gasto %s", domain.ErrNotFound, in.CategoryID)
	}
	expense := &entity.Expense{
		Description:  in.Description,
		Amount:       in.Amount,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// AddIncome registra un ingreso distinto de ventas.
func (uc *FinanceUseCase) AddIncome(in dto.FinanceEntryRequest) (*entity.Income, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	category, err := uc.incCatRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría de ingreso %s", domain.ErrNotFound, in.CategoryID)
	}
	income := &entity.Income{
		Description:  in.Description,
		Amount:       in.Amount,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
	if err := uc.incomeRepo.Create(income); err != nil {
		return nil, err
	}
	return income, nil
}

// ListExpenses devuelve todos los gastos, más recientes primero.
func (uc *FinanceUseCase) ListExpenses() ([]*entity.Expense, error) {
	return uc.expenseRepo.List()
}

// ListIncomes devuelve todos los ingresos, más recientes primero.
func (uc *FinanceUseCase) ListIncomes() ([]*entity.Income, error) {
	return uc.incomeRepo.List()
}

// DeleteExpense elimina un gasto.
func (uc *FinanceUseCase) DeleteExpense(id string) error {
	return uc.expenseRepo.Delete(id)
}

// DeleteIncome elimina un ingreso.
func (uc *FinanceUseCase) DeleteIncome(id string) error {
	return uc.incomeRepo.Delete(id)
}
