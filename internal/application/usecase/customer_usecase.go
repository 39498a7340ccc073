package usecase

import (
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente nuevo.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre de cliente vacío", domain.ErrInvalidInput)
	}
	customer := &entity.Customer{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update edita un cliente existente.
func (uc *CustomerUseCase) Update(in dto.CustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre de cliente vacío", domain.ErrInvalidInput)
	}
	customer, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Address = in.Address
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List devuelve todos los clientes, más recientes primero.
func (uc *CustomerUseCase) List() ([]*entity.Customer, error) {
	return uc.repo.List()
}

// Delete elimina un cliente. Las ventas conservan su snapshot de nombre.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
