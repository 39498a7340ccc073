package repository

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// SetStock actualiza solo QuantityInStock (libro mayor de stock). Es la
	// única vía de mutación de stock; los callers son responsables de
	// emparejarla con una entrada del kardex. Devuelve ErrNotFound si el
	// producto no existe.
	SetStock(productID string, quantity int) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Delete(id string) error
}
