package bolt

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre bbolt. El mismo
// adaptador sirve para las categorías de gasto y las de ingreso: cambia solo
// el bucket. Las categorías no tienen contrato de orden.
type CategoryRepo struct {
	q      Querier
	bucket string
}

// NewExpenseCategoryRepository construye el adaptador sobre expenseCategories.
func NewExpenseCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q, bucket: BucketExpenseCategories}
}

// NewIncomeCategoryRepository construye el adaptador sobre incomeCategories.
func NewIncomeCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q, bucket: BucketIncomeCategories}
}

// Create persiste una categoría nueva; asigna ID y CreatedAt si vienen vacíos.
func (r *CategoryRepo) Create(category *entity.Category) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		if category.ID == "" {
			category.ID = newID()
		}
		if category.CreatedAt.IsZero() {
			category.CreatedAt = time.Now()
		}
		return putJSON(tx.Bucket([]byte(r.bucket)), category.ID, category)
	})
}

// GetByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	var c *entity.Category
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		c, err = getJSON[entity.Category](tx.Bucket([]byte(r.bucket)), id)
		return err
	})
	return c, err
}

// List devuelve todas las categorías (sin orden garantizado).
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		list, err = listJSON[entity.Category](tx.Bucket([]byte(r.bucket)))
		return err
	})
	return list, err
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		return deleteRecord(tx.Bucket([]byte(r.bucket)), id)
	})
}
