package bolt

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre bbolt.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar store o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo; asigna ID y CreatedAt si vienen vacíos.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		if customer.ID == "" {
			customer.ID = newID()
		}
		if customer.CreatedAt.IsZero() {
			customer.CreatedAt = time.Now()
		}
		return putJSON(tx.Bucket([]byte(BucketCustomers)), customer.ID, customer)
	})
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c *entity.Customer
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		c, err = getJSON[entity.Customer](tx.Bucket([]byte(BucketCustomers)), id)
		return err
	})
	return c, err
}

// GetByPhone busca por teléfono exacto; (nil, nil) si no hay coincidencia.
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

// Update reescribe el cliente completo.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketCustomers))
		existing, err := getJSON[entity.Customer](b, customer.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return putJSON(b, customer.ID, customer)
	})
}

// List devuelve todos los clientes, más recientes primero.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	var list []*entity.Customer
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		list, err = listJSON[entity.Customer](tx.Bucket([]byte(BucketCustomers)))
		return err
	})
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(list, func(c *entity.Customer) time.Time { return c.CreatedAt })
	return list, nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		return deleteRecord(tx.Bucket([]byte(BucketCustomers)), id)
	})
}
