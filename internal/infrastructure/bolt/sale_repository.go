package bolt

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre bbolt.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar store o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta nueva; asigna ID y CreatedAt si vienen vacíos.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		if sale.ID == "" {
			sale.ID = newID()
		}
		if sale.CreatedAt.IsZero() {
			sale.CreatedAt = time.Now()
		}
		return putJSON(tx.Bucket([]byte(BucketSales)), sale.ID, sale)
	})
}

// GetByID obtiene una venta por ID; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s *entity.Sale
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		s, err = getJSON[entity.Sale](tx.Bucket([]byte(BucketSales)), id)
		return err
	})
	return s, err
}

// UpdateStatus muta únicamente Status; items y montos quedan intactos.
func (r *SaleRepo) UpdateStatus(saleID, status string) (*entity.Sale, error) {
	var updated *entity.Sale
	err := r.q.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketSales))
		s, err := getJSON[entity.Sale](b, saleID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		s.Status = status
		if err := putJSON(b, saleID, s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List devuelve todas las ventas, más recientes primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	var list []*entity.Sale
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		list, err = listJSON[entity.Sale](tx.Bucket([]byte(BucketSales)))
		return err
	})
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(list, func(s *entity.Sale) time.Time { return s.CreatedAt })
	return list, nil
}
