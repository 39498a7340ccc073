package bolt

import (
	"context"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/pos-ventas/internal/application/ports"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción de escritura bbolt.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run abre una transacción de escritura, ejecuta fn con repos atados a ella
// y hace Commit; cualquier error de fn revierte todas las escrituras.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.db.Update(func(tx *bolt.Tx) error {
		q := sharedTx{tx: tx}
		return fn(
			NewProductRepository(q),
			NewSaleRepository(q),
			NewInventoryLogRepository(q),
		)
	})
}
