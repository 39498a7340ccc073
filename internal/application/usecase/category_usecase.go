package usecase

import (
	"fmt"

	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías de gasto o de ingreso: se
// instancia una vez por colección.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso sobre el repositorio dado.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create registra una categoría nueva.
func (uc *CategoryUseCase) Create(name string) (*entity.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: nombre de categoría vacío", domain.ErrInvalidInput)
	}
	category := &entity.Category{Name: name}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]*entity.Category, error) {
	return uc.repo.List()
}

// Delete elimina una categoría. Gastos e ingresos ya registrados conservan
// su snapshot de nombre.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
