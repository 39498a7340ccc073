package dto

// Tipos de ajuste manual de inventario.
const (
	AdjustmentStockIn   = "stock-in"   // entrada de mercancía: se suma al stock
	AdjustmentStockTake = "stock-take" // conteo físico: la cantidad es el valor absoluto final
)

// AdjustInventoryRequest entrada para un ajuste manual de inventario.
type AdjustInventoryRequest struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"` // nombre que queda en el kardex; vacío usa el del catálogo
	Kind        string `json:"kind"`        // stock-in | stock-take
	Quantity    int    `json:"quantity"`    // stock-in: unidades que entran (con signo); stock-take: stock contado
}
