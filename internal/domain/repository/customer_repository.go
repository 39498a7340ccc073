package repository

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByPhone busca por teléfono exacto; (nil, nil) si no hay coincidencia.
	GetByPhone(phone string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List() ([]*entity.Customer, error)
	Delete(id string) error
}
