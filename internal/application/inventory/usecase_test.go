package inventory_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/application/inventory"
	"github.com/jhoicas/pos-ventas/internal/domain"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/bolt"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

func newAdjustFixture(t *testing.T) (*inventory.AdjustUseCase, *bolt.ProductRepo, *bolt.InventoryLogRepo) {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "inventory-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	productRepo := bolt.NewProductRepository(store)
	logRepo := bolt.NewInventoryLogRepository(store)
	uc := inventory.NewAdjustUseCase(bolt.NewTxRunner(store), logRepo, logger.Nop())
	return uc, productRepo, logRepo
}

func seedProduct(t *testing.T, repo *bolt.ProductRepo, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:            "Teclado mecánico",
		PurchasePrice:   decimal.NewFromInt(180_000),
		SellingPrice:    decimal.NewFromInt(260_000),
		QuantityInStock: stock,
	}
	require.NoError(t, repo.Create(p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// stock-in es aditivo: nuevo = actual + q, cambio = +q.
// stock-take es absoluto: nuevo = q, cambio = q - actual (puede ser negativo).
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_StockInSuma(t *testing.T) {
	uc, productRepo, logRepo := newAdjustFixture(t)
	p := seedProduct(t, productRepo, 25)

	adjusted, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ProductID: p.ID,
		Kind:      dto.AdjustmentStockIn,
		Quantity:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, 35, adjusted.QuantityInStock)

	logs, err := logRepo.ListByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.LogTypeStockIn, logs[0].Type)
	assert.Equal(t, 10, logs[0].QuantityChange)
	assert.Equal(t, 35, logs[0].NewQuantity)
	assert.Empty(t, logs[0].SaleID, "un ajuste manual no referencia venta")
}

func TestAdjust_StockTakeConMasUnidades(t *testing.T) {
	uc, productRepo, logRepo := newAdjustFixture(t)
	p := seedProduct(t, productRepo, 25)

	// El conteo físico encontró 30 unidades: el sistema tenía 25.
	adjusted, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ProductID: p.ID,
		Kind:      dto.AdjustmentStockTake,
		Quantity:  30,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, adjusted.QuantityInStock, "el conteo es el valor absoluto final")

	logs, err := logRepo.ListByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.LogTypeStockTake, logs[0].Type)
	assert.Equal(t, 5, logs[0].QuantityChange, "el kardex registra la diferencia contra el sistema")
	assert.Equal(t, 30, logs[0].NewQuantity)
}

func TestAdjust_StockTakeConMenosUnidades(t *testing.T) {
	uc, productRepo, logRepo := newAdjustFixture(t)
	p := seedProduct(t, productRepo, 25)

	// El conteo encontró solo 18: hay merma.
	adjusted, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ProductID: p.ID,
		Kind:      dto.AdjustmentStockTake,
		Quantity:  18,
	})
	require.NoError(t, err)
	assert.Equal(t, 18, adjusted.QuantityInStock)

	logs, err := logRepo.ListByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, -7, logs[0].QuantityChange, "la merma queda registrada como cambio negativo")
	assert.Equal(t, 18, logs[0].NewQuantity)
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	uc, _, logRepo := newAdjustFixture(t)

	_, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ProductID: "no-existe",
		Kind:      dto.AdjustmentStockIn,
		Quantity:  5,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	logs, err := logRepo.List()
	require.NoError(t, err)
	assert.Empty(t, logs, "un ajuste rechazado no deja kardex (rollback)")
}

func TestAdjust_Invalido(t *testing.T) {
	uc, productRepo, _ := newAdjustFixture(t)
	p := seedProduct(t, productRepo, 25)

	casos := []dto.AdjustInventoryRequest{
		{ProductID: "", Kind: dto.AdjustmentStockIn, Quantity: 1},
		{ProductID: p.ID, Kind: "merge", Quantity: 1},
	}
	for _, req := range casos {
		_, err := uc.Adjust(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "request %+v", req)
	}
}

// El signo de una entrada lo decide el caller: una cantidad negativa resta del
// stock y queda en el kardex tal cual, sin reinterpretarse como otro tipo.
func TestAdjust_StockInNegativoResta(t *testing.T) {
	uc, productRepo, logRepo := newAdjustFixture(t)
	p := seedProduct(t, productRepo, 25)

	adjusted, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ProductID: p.ID,
		Kind:      dto.AdjustmentStockIn,
		Quantity:  -3,
	})
	require.NoError(t, err)
	assert.Equal(t, 22, adjusted.QuantityInStock)

	logs, err := logRepo.ListByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.LogTypeStockIn, logs[0].Type)
	assert.Equal(t, -3, logs[0].QuantityChange)
	assert.Equal(t, 22, logs[0].NewQuantity)
}

func TestAdjust_NombreDelCallerEnElKardex(t *testing.T) {
	uc, productRepo, logRepo := newAdjustFixture(t)
	p := seedProduct(t, productRepo, 25)

	_, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ProductID:   p.ID,
		ProductName: "Teclado mecánico (bodega 2)",
		Kind:        dto.AdjustmentStockIn,
		Quantity:    5,
	})
	require.NoError(t, err)

	logs, err := logRepo.ListByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Teclado mecánico (bodega 2)", logs[0].ProductName)

	// Sin nombre en la petición, el kardex usa el del catálogo.
	_, err = uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ProductID: p.ID,
		Kind:      dto.AdjustmentStockTake,
		Quantity:  20,
	})
	require.NoError(t, err)
	logs, err = logRepo.ListByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, p.Name, logs[0].ProductName)
}

func TestAdjust_StockTakeACero(t *testing.T) {
	uc, productRepo, _ := newAdjustFixture(t)
	p := seedProduct(t, productRepo, 25)

	adjusted, err := uc.Adjust(context.Background(), dto.AdjustInventoryRequest{
		ProductID: p.ID,
		Kind:      dto.AdjustmentStockTake,
		Quantity:  0,
	})
	require.NoError(t, err, "un conteo en cero es legítimo: bodega vacía")
	assert.Equal(t, 0, adjusted.QuantityInStock)
}
