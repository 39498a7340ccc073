package repository

import "github.com/jhoicas/pos-ventas/internal/domain/entity"

// InventoryLogRepository define el puerto del kardex. Es append-only: no hay
// Update ni Delete. Las correcciones se expresan con nuevas entradas.
type InventoryLogRepository interface {
	// Append persiste una entrada; asigna ID, Seq y CreatedAt.
	Append(log *entity.InventoryLog) error
	// List devuelve todas las entradas, más recientes primero (Seq desc).
	List() ([]*entity.InventoryLog, error)
	// ListByProduct devuelve las entradas de un producto, más recientes primero.
	ListByProduct(productID string) ([]*entity.InventoryLog, error)
}
