package dto

import "github.com/shopspring/decimal"

// ── Ventas ────────────────────────────────────────────────────────────────────

// SaleItemInput línea de venta tal como la captura el punto de venta.
// Los snapshots de nombre y precio de compra se resuelven al crear la venta.
type SaleItemInput struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// CreateSaleRequest entrada para registrar una venta.
// TotalAmount y FinalAmount NO se aceptan del caller: se recalculan siempre
// a partir de los items y el descuento.
type CreateSaleRequest struct {
	Items        []SaleItemInput `json:"items"`
	Discount     decimal.Decimal `json:"discount"`
	Status       string          `json:"status"` // vacío => PENDING
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Notes        string          `json:"notes"`
}

// BulkOrderRequest entrada para generar una venta idéntica por cada cliente
// de la lista (listas de nombres y teléfonos emparejadas por índice). El
// precio se toma del producto; clientes existentes se reconocen por teléfono.
type BulkOrderRequest struct {
	ProductID        string          `json:"productId"`
	CustomerNames    []string        `json:"customerNames"`
	CustomerPhones   []string        `json:"customerPhones"`
	QuantityPerOrder int             `json:"quantityPerOrder"`
	DiscountPerOrder decimal.Decimal `json:"discountPerOrder"`
	EmployeeID       string          `json:"employeeId"`
}
