package usecase

import (
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create registra un empleado nuevo.
func (uc *EmployeeUseCase) Create(in dto.EmployeeRequest) (*entity.Employee, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre de empleado vacío", domain.ErrInvalidInput)
	}
	employee := &entity.Employee{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Position:  in.Position,
		StartDate: in.StartDate,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Update edita un empleado existente.
func (uc *EmployeeUseCase) Update(in dto.EmployeeRequest) (*entity.Employee, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre de empleado vacío", domain.ErrInvalidInput)
	}
	employee, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	employee.Name = in.Name
	employee.Phone = in.Phone
	employee.Email = in.Email
	employee.Position = in.Position
	employee.StartDate = in.StartDate
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// List devuelve todos los empleados, más recientes primero.
func (uc *EmployeeUseCase) List() ([]*entity.Employee, error) {
	return uc.repo.List()
}

// Delete elimina un empleado. Las ventas conservan su snapshot de nombre.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
