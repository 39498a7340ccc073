package repository

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// CategoryRepository define el puerto para categorías. Se instancia dos
// veces: una sobre la colección de categorías de gasto y otra sobre la de
// ingreso.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Delete(id string) error
}
