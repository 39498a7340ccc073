package bolt

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

var (
	_ repository.ExpenseRepository = (*ExpenseRepo)(nil)
	_ repository.IncomeRepository  = (*IncomeRepo)(nil)
)

// ExpenseRepo implementación de ExpenseRepository sobre bbolt.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar store o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto nuevo; asigna ID y CreatedAt si vienen vacíos.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		if expense.ID == "" {
			expense.ID = newID()
		}
		if expense.CreatedAt.IsZero() {
			expense.CreatedAt = time.Now()
		}
		return putJSON(tx.Bucket([]byte(BucketExpenses)), expense.ID, expense)
	})
}

// List devuelve todos los gastos, más recientes primero.
func (r *ExpenseRepo) List() ([]*entity.Expense, error) {
	var list []*entity.Expense
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		list, err = listJSON[entity.Expense](tx.Bucket([]byte(BucketExpenses)))
		return err
	})
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(list, func(e *entity.Expense) time.Time { return e.CreatedAt })
	return list, nil
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		return deleteRecord(tx.Bucket([]byte(BucketExpenses)), id)
	})
}

// IncomeRepo implementación de IncomeRepository sobre bbolt.
type IncomeRepo struct {
	q Querier
}

// NewIncomeRepository construye el adaptador. Pasar store o tx (Querier).
func NewIncomeRepository(q Querier) *IncomeRepo {
	return &IncomeRepo{q: q}
}

// Create persiste un ingreso nuevo; asigna ID y CreatedAt si vienen vacíos.
func (r *IncomeRepo) Create(income *entity.Income) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		if income.ID == "" {
			income.ID = newID()
		}
		if income.CreatedAt.IsZero() {
			income.CreatedAt = time.Now()
		}
		return putJSON(tx.Bucket([]byte(BucketIncomes)), income.ID, income)
	})
}

// List devuelve todos los ingresos, más recientes primero.
func (r *IncomeRepo) List() ([]*entity.Income, error) {
	var list []*entity.Income
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		list, err = listJSON[entity.Income](tx.Bucket([]byte(BucketIncomes)))
		return err
	})
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(list, func(i *entity.Income) time.Time { return i.CreatedAt })
	return list, nil
}

// Delete elimina un ingreso por ID.
func (r *IncomeRepo) Delete(id string) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		return deleteRecord(tx.Bucket([]byte(BucketIncomes)), id)
	})
}
