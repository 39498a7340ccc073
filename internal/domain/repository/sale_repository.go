package repository

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Items y montos son inmutables: después de Create solo UpdateStatus escribe.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// UpdateStatus muta únicamente el campo Status y devuelve la venta
	// actualizada. ErrNotFound si la venta no existe.
	UpdateStatus(saleID, status string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
}
