package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// QuantityInStock solo se muta a través del motor de inventario (ventas y
// ajustes); el CRUD de catálogo nunca lo toca después de la creación.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PurchasePrice   decimal.Decimal `json:"purchasePrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Barcode         string          `json:"barcode"`
	QuantityInStock int             `json:"quantityInStock"`
	CreatedAt       time.Time       `json:"createdAt"`
}
