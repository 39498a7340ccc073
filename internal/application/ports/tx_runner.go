// Package ports define contratos compartidos entre casos de uso.
package ports

import (
	"context"

	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del store, pasando
// repositorios atados a esa transacción. Es la unidad de trabajo del motor de
// inventario: la venta, sus mutaciones de stock y sus entradas del kardex
// aterrizan todas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
