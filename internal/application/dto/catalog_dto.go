package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Catálogo y directorio ─────────────────────────────────────────────────────

// CreateProductRequest entrada para dar de alta un producto.
// InitialStock fija QuantityInStock al crear; después solo el motor de
// inventario lo muta.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Barcode       string          `json:"barcode"`
	InitialStock  int             `json:"initialStock"`
}

// UpdateProductRequest entrada para editar datos de catálogo de un producto.
// No incluye stock a propósito.
type UpdateProductRequest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Barcode       string          `json:"barcode"`
}

// CustomerRequest entrada para crear o actualizar un cliente.
type CustomerRequest struct {
	ID      string `json:"id"` // vacío en creación
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// EmployeeRequest entrada para crear o actualizar un empleado.
type EmployeeRequest struct {
	ID        string    `json:"id"` // vacío en creación
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Position  string    `json:"position"`
	StartDate time.Time `json:"startDate"`
}

// FinanceEntryRequest entrada para registrar un gasto o un ingreso.
type FinanceEntryRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"categoryId"`
}
