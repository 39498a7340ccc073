package repository

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	List() ([]*entity.Expense, error)
	Delete(id string) error
}

// IncomeRepository define el puerto de persistencia para ingresos.
type IncomeRepository interface {
	Create(income *entity.Income) error
	List() ([]*entity.Income, error)
	Delete(id string) error
}
