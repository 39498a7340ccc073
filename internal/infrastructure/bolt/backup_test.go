package bolt_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/bolt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Respaldo: exportar un store y volverlo a importar en uno vacío debe dejar
// el mismo contenido, incluida la secuencia del kardex para que las entradas
// posteriores sigan siendo monotónicas.
// ──────────────────────────────────────────────────────────────────────────────
func TestBackup_RoundTrip(t *testing.T) {
	src := newTestStore(t)

	productRepo := bolt.NewProductRepository(src)
	p := newTestProduct("Monitor 4K", 15)
	require.NoError(t, productRepo.Create(p))

	logRepo := bolt.NewInventoryLogRepository(src)
	for i := 0; i < 3; i++ {
		require.NoError(t, logRepo.Append(&entity.InventoryLog{
			ProductID: p.ID, ProductName: p.Name,
			QuantityChange: -1, NewQuantity: 15 - i - 1,
			Type: entity.LogTypeSale,
		}))
	}

	doc, err := src.ExportAll()
	require.NoError(t, err)
	assert.Len(t, doc, len(bolt.Buckets), "el export incluye todas las colecciones")

	dst := newTestStore(t)
	require.NoError(t, dst.ImportAll(doc))

	products, err := bolt.NewProductRepository(dst).List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p.ID, products[0].ID)
	assert.Equal(t, 15, products[0].QuantityInStock)

	logs, err := bolt.NewInventoryLogRepository(dst).List()
	require.NoError(t, err)
	require.Len(t, logs, 3)

	// La secuencia debe continuar después del máximo importado.
	next := &entity.InventoryLog{ProductID: p.ID, Type: entity.LogTypeStockIn, QuantityChange: 1, NewQuantity: 13}
	require.NoError(t, bolt.NewInventoryLogRepository(dst).Append(next))
	assert.Equal(t, uint64(4), next.Seq, "la secuencia restaurada debe continuar en 4")
}

// TestBackup_ImportReemplaza verifica que importar una colección reemplaza su
// contenido previo y que las colecciones ausentes del documento quedan
// intactas.
func TestBackup_ImportReemplaza(t *testing.T) {
	store := newTestStore(t)
	productRepo := bolt.NewProductRepository(store)
	customerRepo := bolt.NewCustomerRepository(store)

	require.NoError(t, productRepo.Create(newTestProduct("Viejo", 1)))
	require.NoError(t, customerRepo.Create(&entity.Customer{Name: "Andrea", Phone: "300"}))

	nuevo := newTestProduct("Nuevo", 9)
	nuevo.ID = "prod-nuevo"
	raw, err := json.Marshal([]*entity.Product{nuevo})
	require.NoError(t, err)

	doc := map[string]json.RawMessage{bolt.BucketProducts: raw}
	require.NoError(t, store.ImportAll(doc))

	products, err := productRepo.List()
	require.NoError(t, err)
	require.Len(t, products, 1, "la colección importada reemplaza a la anterior")
	assert.Equal(t, "prod-nuevo", products[0].ID)

	customers, err := customerRepo.List()
	require.NoError(t, err)
	assert.Len(t, customers, 1, "las colecciones ausentes del documento no se tocan")
}

func TestBackup_ImportRegistroSinID(t *testing.T) {
	store := newTestStore(t)
	doc := map[string]json.RawMessage{
		bolt.BucketProducts: json.RawMessage(`[{"name":"sin id"}]`),
	}
	err := store.ImportAll(doc)
	require.Error(t, err, "un registro sin id debe rechazar el import completo")
}
