// Package state expone la fachada de estado de la aplicación: una vista en
// memoria de todas las colecciones que se recarga después de cada mutación,
// de modo que los consumidores (UI, CLI) siempre leen datos frescos sin
// consultar el store directamente.
package state

import (
	"context"
	"sync"

	"github.com/jhoicas/pos-ventas/internal/application/dto"
	"github.com/jhoicas/pos-ventas/internal/application/inventory"
	"github.com/jhoicas/pos-ventas/internal/application/sales"
	"github.com/jhoicas/pos-ventas/internal/application/usecase"
	"github.com/jhoicas/pos-ventas/internal/domain/entity"
	"github.com/jhoicas/pos-ventas/pkg/logger"
)

// Snapshot es la vista inmutable del estado completo. Las colecciones con
// fecha vienen más recientes primero; el kardex en orden de secuencia
// descendente.
type Snapshot struct {
	Products          []*entity.Product
	Sales             []*entity.Sale
	Customers         []*entity.Customer
	Employees         []*entity.Employee
	ExpenseCategories []*entity.Category
	IncomeCategories  []*entity.Category
	Expenses          []*entity.Expense
	Incomes           []*entity.Income
	InventoryLogs     []*entity.InventoryLog
}

// App es la fachada: agrupa todos los casos de uso detrás de una sola
// superficie inyectable y mantiene el Snapshot al día. Todas las dependencias
// se inyectan; no hay estado global.
type App struct {
	saleUC     *sales.SaleUseCase
	adjustUC   *inventory.AdjustUseCase
	productUC  *usecase.ProductUseCase
	customerUC *usecase.CustomerUseCase
	employeeUC *usecase.EmployeeUseCase
	expCatUC   *usecase.CategoryUseCase
	incCatUC   *usecase.CategoryUseCase
	financeUC  *usecase.FinanceUseCase
	log        *logger.Logger

	mu       sync.RWMutex
	snapshot Snapshot
}

// Deps dependencias de la fachada.
type Deps struct {
	SaleUC     *sales.SaleUseCase
	AdjustUC   *inventory.AdjustUseCase
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ExpCatUC   *usecase.CategoryUseCase
	IncCatUC   *usecase.CategoryUseCase
	FinanceUC  *usecase.FinanceUseCase
	Logger     *logger.Logger
}

// NewApp construye la fachada y carga el snapshot inicial.
func NewApp(ctx context.Context, d Deps) (*App, error) {
	app := &App{
		saleUC:     d.SaleUC,
		adjustUC:   d.AdjustUC,
		productUC:  d.ProductUC,
		customerUC: d.CustomerUC,
		employeeUC: d.EmployeeUC,
		expCatUC:   d.ExpCatUC,
		incCatUC:   d.IncCatUC,
		financeUC:  d.FinanceUC,
		log:        d.Logger,
	}
	if err := app.Refresh(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

// Snapshot devuelve la última vista cargada.
func (a *App) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// Refresh recarga todas las colecciones desde el store.
func (a *App) Refresh(ctx context.Context) error {
	var snap Snapshot
	var err error

	if snap.Products, err = a.productUC.List(); err != nil {
		return err
	}
	if snap.Sales, err = a.saleUC.ListSales(ctx); err != nil {
		return err
	}
	if snap.Customers, err = a.customerUC.List(); err != nil {
		return err
	}
	if snap.Employees, err = a.employeeUC.List(); err != nil {
		return err
	}
	if snap.ExpenseCategories, err = a.expCatUC.List(); err != nil {
		return err
	}
	if snap.IncomeCategories, err = a.incCatUC.List(); err != nil {
		return err
	}
	if snap.Expenses, err = a.financeUC.ListExpenses(); err != nil {
		return err
	}
	if snap.Incomes, err = a.financeUC.ListIncomes(); err != nil {
		return err
	}
	if snap.InventoryLogs, err = a.adjustUC.History(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	a.snapshot = snap
	a.mu.Unlock()
	a.log.Debug().
		Int("products", len(snap.Products)).
		Int("sales", len(snap.Sales)).
		Msg("snapshot recargado")
	return nil
}

// refreshAfter recarga el snapshot después de una mutación exitosa.
func (a *App) refreshAfter(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	return a.Refresh(ctx)
}

// ── Ventas e inventario ───────────────────────────────────────────────────────

// AddSale registra una venta y recarga el estado.
func (a *App) AddSale(ctx context.Context, req dto.CreateSaleRequest) (*entity.Sale, error) {
	sale, err := a.saleUC.CreateSale(ctx, req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return sale, nil
}

// UpdateSaleStatus transiciona una venta y recarga el estado.
func (a *App) UpdateSaleStatus(ctx context.Context, saleID, status string) (*entity.Sale, error) {
	sale, err := a.saleUC.UpdateSaleStatus(ctx, saleID, status)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return sale, nil
}

// CreateBulkOrders genera pedidos en lote y recarga el estado.
func (a *App) CreateBulkOrders(ctx context.Context, req dto.BulkOrderRequest) ([]*entity.Sale, error) {
	created, err := a.saleUC.CreateBulkOrders(ctx, req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return created, err
	}
	return created, nil
}

// AdjustInventory aplica un ajuste manual y recarga el estado.
func (a *App) AdjustInventory(ctx context.Context, req dto.AdjustInventoryRequest) (*entity.Product, error) {
	product, err := a.adjustUC.Adjust(ctx, req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return product, nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// AddProduct da de alta un producto y recarga el estado.
func (a *App) AddProduct(ctx context.Context, req dto.CreateProductRequest) (*entity.Product, error) {
	product, err := a.productUC.Create(req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct edita un producto y recarga el estado.
func (a *App) UpdateProduct(ctx context.Context, req dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := a.productUC.Update(req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct elimina un producto y recarga el estado.
func (a *App) DeleteProduct(ctx context.Context, id string) error {
	return a.refreshAfter(ctx, a.productUC.Delete(id))
}

// ── Directorio ────────────────────────────────────────────────────────────────

// AddCustomer registra un cliente y recarga el estado.
func (a *App) AddCustomer(ctx context.Context, req dto.CustomerRequest) (*entity.Customer, error) {
	customer, err := a.customerUC.Create(req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer edita un cliente y recarga el estado.
func (a *App) UpdateCustomer(ctx context.Context, req dto.CustomerRequest) (*entity.Customer, error) {
	customer, err := a.customerUC.Update(req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer elimina un cliente y recarga el estado.
func (a *App) DeleteCustomer(ctx context.Context, id string) error {
	return a.refreshAfter(ctx, a.customerUC.Delete(id))
}

// AddEmployee registra un empleado y recarga el estado.
func (a *App) AddEmployee(ctx context.Context, req dto.EmployeeRequest) (*entity.Employee, error) {
	employee, err := a.employeeUC.Create(req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return employee, nil
}

// UpdateEmployee edita un empleado y recarga el estado.
func (a *App) UpdateEmployee(ctx context.Context, req dto.EmployeeRequest) (*entity.Employee, error) {
	employee, err := a.employeeUC.Update(req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee elimina un empleado y recarga el estado.
func (a *App) DeleteEmployee(ctx context.Context, id string) error {
	return a.refreshAfter(ctx, a.employeeUC.Delete(id))
}

// ── Finanzas ──────────────────────────────────────────────────────────────────

// AddExpenseCategory registra una categoría de gasto y recarga el estado.
func (a *App) AddExpenseCategory(ctx context.Context, name string) (*entity.Category, error) {
	category, err := a.expCatUC.Create(name)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteExpenseCategory elimina una categoría de gasto y recarga el estado.
func (a *App) DeleteExpenseCategory(ctx context.Context, id string) error {
	return a.refreshAfter(ctx, a.expCatUC.Delete(id))
}

// AddIncomeCategory registra una categoría de ingreso y recarga el estado.
func (a *App) AddIncomeCategory(ctx context.Context, name string) (*entity.Category, error) {
	category, err := a.incCatUC.Create(name)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteIncomeCategory elimina una categoría de ingreso y recarga el estado.
func (a *App) DeleteIncomeCategory(ctx context.Context, id string) error {
	return a.refreshAfter(ctx, a.incCatUC.Delete(id))
}

// AddExpense registra un gasto y recarga el estado.
func (a *App) AddExpense(ctx context.Context, req dto.FinanceEntryRequest) (*entity.Expense, error) {
	expense, err := a.financeUC.AddExpense(req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense elimina un gasto y recarga el estado.
func (a *App) DeleteExpense(ctx context.Context, id string) error {
	return a.refreshAfter(ctx, a.financeUC.DeleteExpense(id))
}

// AddIncome registra un ingreso y recarga el estado.
func (a *App) AddIncome(ctx context.Context, req dto.FinanceEntryRequest) (*entity.Income, error) {
	income, err := a.financeUC.AddIncome(req)
	if err := a.refreshAfter(ctx, err); err != nil {
		return nil, err
	}
	return income, nil
}

// DeleteIncome elimina un ingreso y recarga el estado.
func (a *App) DeleteIncome(ctx context.Context, id string) error {
	return a.refreshAfter(ctx, a.financeUC.DeleteIncome(id))
}
