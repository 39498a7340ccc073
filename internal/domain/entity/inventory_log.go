package entity

import "time"

// Tipos de evento del kardex de inventario.
const (
	LogTypeInitial    = "INITIAL"    // stock inicial al sembrar el catálogo
	LogTypeStockIn    = "STOCK_IN"   // entrada manual de mercancía
	LogTypeSale       = "SALE"       // descuento por venta
	LogTypeStockTake  = "STOCK_TAKE" // conteo físico (valor absoluto)
	LogTypeReturn     = "RETURN"     // reingreso por devolución de venta
	LogTypeAdjustment = "ADJUSTMENT" // re-descuento al sacar una venta de RETURNED
)

// InventoryLog es una entrada del kardex: el registro inmutable de cada
// evento que cambió el stock de un producto. Solo se agrega, nunca se
// actualiza ni se borra.
//
// Invariante: NewQuantity debe ser igual al QuantityInStock del producto
// inmediatamente después de la mutación que esta entrada explica; reproducir
// los QuantityChange de un producto en orden de Seq desde 0 reconstruye su
// stock actual.
type InventoryLog struct {
	ID             string    `json:"id"`
	Seq            uint64    `json:"seq"` // secuencia monotónica asignada por el store
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"` // snapshot
	QuantityChange int       `json:"quantityChange"`
	NewQuantity    int       `json:"newQuantity"`
	Type           string    `json:"type"`
	SaleID         string    `json:"saleId,omitempty"` // presente en SALE, RETURN y ADJUSTMENT
	CreatedAt      time.Time `json:"createdAt"`
}
