package bolt

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre bbolt (usable con
// store o con tx compartida).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar store o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo; asigna ID y CreatedAt si vienen vacíos.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		if product.ID == "" {
			product.ID = newID()
		}
		if product.CreatedAt.IsZero() {
			product.CreatedAt = time.Now()
		}
		return putJSON(tx.Bucket([]byte(BucketProducts)), product.ID, product)
	})
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p *entity.Product
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		p, err = getJSON[entity.Product](tx.Bucket([]byte(BucketProducts)), id)
		return err
	})
	return p, err
}

// Update reescribe el producto completo (catálogo; el stock va por SetStock).
func (r *ProductRepo) Update(product *entity.Product) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketProducts))
		existing, err := getJSON[entity.Product](b, product.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return putJSON(b, product.ID, product)
	})
}

// SetStock actualiza solo QuantityInStock y devuelve el producto resultante.
func (r *ProductRepo) SetStock(productID string, quantity int) (*entity.Product, error) {
	var updated *entity.Product
	err := r.q.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketProducts))
		p, err := getJSON[entity.Product](b, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		p.QuantityInStock = quantity
		if err := putJSON(b, productID, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List devuelve el catálogo completo, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		list, err = listJSON[entity.Product](tx.Bucket([]byte(BucketProducts)))
		return err
	})
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(list, func(p *entity.Product) time.Time { return p.CreatedAt })
	return list, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		return deleteRecord(tx.Bucket([]byte(BucketProducts)), id)
	})
}
