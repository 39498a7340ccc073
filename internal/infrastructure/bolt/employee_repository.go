package bolt

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre bbolt.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar store o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado nuevo; asigna ID y CreatedAt si vienen vacíos.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		if employee.ID == "" {
			employee.ID = newID()
		}
		if employee.CreatedAt.IsZero() {
			employee.CreatedAt = time.Now()
		}
		return putJSON(tx.Bucket([]byte(BucketEmployees)), employee.ID, employee)
	})
}

// GetByID obtiene un empleado por ID; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	var e *entity.Employee
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		e, err = getJSON[entity.Employee](tx.Bucket([]byte(BucketEmployees)), id)
		return err
	})
	return e, err
}

// Update reescribe el empleado completo.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketEmployees))
		existing, err := getJSON[entity.Employee](b, employee.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return putJSON(b, employee.ID, employee)
	})
}

// List devuelve todos los empleados, más recientes primero.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	var list []*entity.Employee
	err := r.q.View(func(tx *bolt.Tx) error {
		var err error
		list, err = listJSON[entity.Employee](tx.Bucket([]byte(BucketEmployees)))
		return err
	})
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(list, func(e *entity.Employee) time.Time { return e.CreatedAt })
	return list, nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	return r.q.Update(func(tx *bolt.Tx) error {
		return deleteRecord(tx.Bucket([]byte(BucketEmployees)), id)
	})
}
