package state_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/application/inventory"
	"github.com/jhoicas/pos-ventas/internal/application/sales"
	"github.com/jhoicas/pos-ventas/internal/application/state"
	"github.com/jhoicas/pos-ventas/internal/application/usecase"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/internal/infrastructure/bolt"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

func newApp(t *testing.T) *state.App {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "state-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	productRepo := bolt.NewProductRepository(store)
	saleRepo := bolt.NewSaleRepository(store)
	logRepo := bolt.NewInventoryLogRepository(store)
	customerRepo := bolt.NewCustomerRepository(store)
	employeeRepo := bolt.NewEmployeeRepository(store)
	expCatRepo := bolt.NewExpenseCategoryRepository(store)
	incCatRepo := bolt.NewIncomeCategoryRepository(store)
	txRunner := bolt.NewTxRunner(store)
	log := logger.Nop()

	app, err := state.NewApp(context.Background(), state.Deps{
		SaleUC:     sales.NewSaleUseCase(txRunner, saleRepo, productRepo, customerRepo, employeeRepo, log),
		AdjustUC:   inventory.NewAdjustUseCase(txRunner, logRepo, log),
		ProductUC:  usecase.NewProductUseCase(productRepo),
		CustomerUC: usecase.NewCustomerUseCase(customerRepo),
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo),
		ExpCatUC:   usecase.NewCategoryUseCase(expCatRepo),
		IncCatUC:   usecase.NewCategoryUseCase(incCatRepo),
		FinanceUC: usecase.NewFinanceUseCase(
			bolt.NewExpenseRepository(store),
			bolt.NewIncomeRepository(store),
			expCatRepo,
			incCatRepo,
		),
		Logger: log,
	})
	require.NoError(t, err)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// La fachada debe reflejar cada mutación en el snapshot sin que el caller
// tenga que recargar a mano: mutar → leer Snapshot() ya trae lo nuevo.
// ──────────────────────────────────────────────────────────────────────────────
func TestApp_SnapshotSeActualizaTrasCadaMutacion(t *testing.T) {
	app := newApp(t)
	ctx := context.Background()

	assert.Empty(t, app.Snapshot().Products, "el snapshot inicial de un store vacío está vacío")

	product, err := app.AddProduct(ctx, dto.CreateProductRequest{
		Name:          "Portátil Pro",
		PurchasePrice: decimal.NewFromInt(3_200_000),
		SellingPrice:  decimal.NewFromInt(4_100_000),
		InitialStock:  10,
	})
	require.NoError(t, err)

	snap := app.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, product.ID, snap.Products[0].ID)

	sale, err := app.AddSale(ctx, dto.CreateSaleRequest{
		Items: []dto.SaleItemInput{{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      2,
			Price:         product.SellingPrice,
			PurchasePrice: product.PurchasePrice,
		}},
		Status: entity.SaleStatusCompleted,
	})
	require.NoError(t, err)

	snap = app.Snapshot()
	require.Len(t, snap.Sales, 1)
	assert.Equal(t, 8, snap.Products[0].QuantityInStock, "el snapshot ve el stock ya descontado")
	require.Len(t, snap.InventoryLogs, 1)
	assert.Equal(t, entity.LogTypeSale, snap.InventoryLogs[0].Type)

	_, err = app.UpdateSaleStatus(ctx, sale.ID, entity.SaleStatusReturned)
	require.NoError(t, err)

	snap = app.Snapshot()
	assert.Equal(t, entity.SaleStatusReturned, snap.Sales[0].Status)
	assert.Equal(t, 10, snap.Products[0].QuantityInStock, "la devolución restituyó el stock")
	require.Len(t, snap.InventoryLogs, 2)
	assert.Equal(t, entity.LogTypeReturn, snap.InventoryLogs[0].Type, "kardex en secuencia descendente")
}

func TestApp_MutacionFallidaNoTocaElSnapshot(t *testing.T) {
	app := newApp(t)
	ctx := context.Background()

	_, err := app.AddSale(ctx, dto.CreateSaleRequest{})
	require.Error(t, err)
	assert.Empty(t, app.Snapshot().Sales, "una mutación rechazada deja el snapshot como estaba")
}

func TestApp_FinanzasConSnapshotDeCategoria(t *testing.T) {
	app := newApp(t)
	ctx := context.Background()

	cat, err := app.AddExpenseCategory(ctx, "Arriendo del local")
	require.NoError(t, err)

	expense, err := app.AddExpense(ctx, dto.FinanceEntryRequest{
		Description: "Arriendo agosto",
		Amount:      decimal.NewFromInt(2_500_000),
		CategoryID:  cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, cat.Name, expense.CategoryName, "el gasto guarda snapshot del nombre de la categoría")

	// Borrar la categoría no borra el gasto ni su snapshot.
	require.NoError(t, app.DeleteExpenseCategory(ctx, cat.ID))
	snap := app.Snapshot()
	assert.Empty(t, snap.ExpenseCategories)
	require.Len(t, snap.Expenses, 1)
	assert.Equal(t, "Arriendo del local", snap.Expenses[0].CategoryName)
}
