package entity

import "time"

// Category es una categoría de gastos o de ingresos (colecciones separadas,
// mismo shape).
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
