package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusPending   = "PENDING"   // creada, pendiente de entrega
	SaleStatusCompleted = "COMPLETED" // entregada y cobrada
	SaleStatusReturned  = "RETURNED"  // devuelta, mercancía de vuelta en bodega
)

// ValidSaleStatus indica si s es uno de los tres estados conocidos.
func ValidSaleStatus(s string) bool {
	return s == SaleStatusPending || s == SaleStatusCompleted || s == SaleStatusReturned
}

// SaleItem es una línea de venta. ProductName, Price y PurchasePrice son
// snapshots al momento de la venta: cambios posteriores del producto no
// afectan ventas históricas.
type SaleItem struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// Subtotal devuelve Price × Quantity.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale representa una venta. Items y montos son inmutables después de la
// creación; las transiciones de estado solo mutan Status.
// FinalAmount se recalcula siempre como TotalAmount - Discount.
type Sale struct {
	ID           string          `json:"id"`
	Items        []SaleItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Discount     decimal.Decimal `json:"discount"`
	FinalAmount  decimal.Decimal `json:"finalAmount"`
	Status       string          `json:"status"`
	CustomerID   string          `json:"customerId,omitempty"`
	CustomerName string          `json:"customerName"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// StockEffect es el efecto sobre el inventario de una transición de estado.
type StockEffect int

const (
	StockEffectNone     StockEffect = iota // solo cambia el campo Status
	StockEffectRestock                     // reingresar cada item (entrada a RETURNED)
	StockEffectRededuct                    // volver a descontar cada item (salida de RETURNED)
)

// saleTransitions es la tabla explícita (from, to) → efecto de stock.
// RETURNED es el único estado donde la mercancía está de vuelta en bodega:
// entrar a él reingresa los items y salir de él los vuelve a descontar, en
// simetría exacta. Las transiciones Pending↔Completed no tocan stock.
var saleTransitions = map[[2]string]StockEffect{
	{SaleStatusPending, SaleStatusCompleted}:  StockEffectNone,
	{SaleStatusCompleted, SaleStatusPending}:  StockEffectNone,
	{SaleStatusPending, SaleStatusReturned}:   StockEffectRestock,
	{SaleStatusCompleted, SaleStatusReturned}: StockEffectRestock,
	{SaleStatusReturned, SaleStatusPending}:   StockEffectRededuct,
	{SaleStatusReturned, SaleStatusCompleted}: StockEffectRededuct,
}

// TransitionEffect devuelve el efecto de stock de pasar de from a to.
// Una auto-transición (from == to) es no-op.
func TransitionEffect(from, to string) StockEffect {
	if from == to {
		return StockEffectNone
	}
	return saleTransitions[[2]string{from, to}]
}
