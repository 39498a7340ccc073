package bolt_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/domain/repository"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/bolt"
)

// newTestStore abre un store en un archivo temporal que vive lo que dura el
// test.
func newTestStore(t *testing.T) *bolt.Store {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "pos-test.db"))
	require.NoError(t, err, "abrir el store temporal no debe fallar")
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestProduct(name string, stock int) *entity.Product {
	return &entity.Product{
		Name:            name,
		PurchasePrice:   decimal.NewFromInt(100),
		SellingPrice:    decimal.NewFromInt(150),
		QuantityInStock: stock,
	}
}

func TestProductRepository_CreateAsignaIDYFecha(t *testing.T) {
	store := newTestStore(t)
	repo := bolt.NewProductRepository(store)

	p := newTestProduct("Mouse inalámbrico", 10)
	require.NoError(t, repo.Create(p))
	assert.NotEmpty(t, p.ID, "Create debe asignar un ID")
	assert.False(t, p.CreatedAt.IsZero(), "Create debe asignar CreatedAt")

	loaded, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, p.Name, loaded.Name)
	assert.Equal(t, 10, loaded.QuantityInStock)
}

func TestProductRepository_GetByIDInexistente(t *testing.T) {
	store := newTestStore(t)
	repo := bolt.NewProductRepository(store)

	loaded, err := repo.GetByID("no-existe")
	require.NoError(t, err, "un id inexistente no es error del store")
	assert.Nil(t, loaded, "el contrato del repo es (nil, nil) cuando no existe")
}

func TestProductRepository_SetStockSoloMutaStock(t *testing.T) {
	store := newTestStore(t)
	repo := bolt.NewProductRepository(store)

	p := newTestProduct("Teclado mecánico", 25)
	require.NoError(t, repo.Create(p))

	updated, err := repo.SetStock(p.ID, 17)
	require.NoError(t, err)
	assert.Equal(t, 17, updated.QuantityInStock)
	assert.Equal(t, p.Name, updated.Name, "SetStock no debe tocar los demás campos")
	assert.True(t, updated.SellingPrice.Equal(p.SellingPrice))
}

// ──────────────────────────────────────────────────────────────────────────────
// Kardex: Append debe asignar una secuencia estrictamente creciente aunque
// varias entradas compartan timestamp, y List debe devolver Seq descendente.
// ──────────────────────────────────────────────────────────────────────────────
func TestInventoryLogRepository_SecuenciaMonotonica(t *testing.T) {
	store := newTestStore(t)
	repo := bolt.NewInventoryLogRepository(store)

	for i := 0; i < 5; i++ {
		entry := &entity.InventoryLog{
			ProductID:      "prod-x",
			ProductName:    "Producto X",
			QuantityChange: -1,
			NewQuantity:    10 - i,
			Type:           entity.LogTypeSale,
		}
		require.NoError(t, repo.Append(entry))
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, uint64(i+1), entry.Seq, "la secuencia debe crecer de a uno")
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i-1].Seq, list[i].Seq, "List debe venir en Seq descendente")
	}
}

func TestInventoryLogRepository_ListByProduct(t *testing.T) {
	store := newTestStore(t)
	repo := bolt.NewInventoryLogRepository(store)

	require.NoError(t, repo.Append(&entity.InventoryLog{ProductID: "a", Type: entity.LogTypeStockIn, QuantityChange: 5, NewQuantity: 5}))
	require.NoError(t, repo.Append(&entity.InventoryLog{ProductID: "b", Type: entity.LogTypeStockIn, QuantityChange: 3, NewQuantity: 3}))
	require.NoError(t, repo.Append(&entity.InventoryLog{ProductID: "a", Type: entity.LogTypeSale, QuantityChange: -2, NewQuantity: 3}))

	logs, err := repo.ListByProduct("a")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.LogTypeSale, logs[0].Type, "la entrada más reciente primero")
}

func TestSaleRepository_UpdateStatusSoloMutaEstado(t *testing.T) {
	store := newTestStore(t)
	repo := bolt.NewSaleRepository(store)

	sale := &entity.Sale{
		Items: []entity.SaleItem{{
			ProductID: "p1", ProductName: "Hub USB-C", Quantity: 2,
			Price: decimal.NewFromInt(140_000), PurchasePrice: decimal.NewFromInt(90_000),
		}},
		TotalAmount: decimal.NewFromInt(280_000),
		Discount:    decimal.Zero,
		FinalAmount: decimal.NewFromInt(280_000),
		Status:      entity.SaleStatusPending,
	}
	require.NoError(t, repo.Create(sale))

	updated, err := repo.UpdateStatus(sale.ID, entity.SaleStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, updated.Status)
	assert.True(t, updated.FinalAmount.Equal(sale.FinalAmount), "los montos son inmutables")
	require.Len(t, updated.Items, 1)
}

// TestTxRunner_RollbackTotal verifica la unidad de trabajo: si el callback
// falla a mitad de camino, ninguna de sus escrituras previas sobrevive.
func TestTxRunner_RollbackTotal(t *testing.T) {
	store := newTestStore(t)
	runner := bolt.NewTxRunner(store)
	boom := errors.New("falla simulada")

	err := runner.Run(context.Background(), func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		if err := productRepo.Create(newTestProduct("Efímero", 1)); err != nil {
			return err
		}
		if err := logRepo.Append(&entity.InventoryLog{ProductID: "x", Type: entity.LogTypeStockIn, QuantityChange: 1, NewQuantity: 1}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	products, err := bolt.NewProductRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, products, "el producto no debe sobrevivir al rollback")

	logs, err := bolt.NewInventoryLogRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, logs, "el kardex no debe sobrevivir al rollback")
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	store := newTestStore(t)
	runner := bolt.NewTxRunner(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runner.Run(ctx, func(repository.ProductRepository, repository.SaleRepository, repository.InventoryLogRepository) error {
		t.Fatal("el callback no debe ejecutarse con contexto cancelado")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}
