package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto registrado en la contabilidad de la tienda.
// CategoryName es snapshot del nombre de la categoría al momento del registro.
type Expense struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Income es un ingreso distinto de ventas (mismo shape que Expense).
type Income struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	CreatedAt    time.Time       `json:"createdAt"`
}
