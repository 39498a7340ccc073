package entity

import "time"

// Employee representa un empleado de la tienda.
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Position  string    `json:"position"`
	StartDate time.Time `json:"startDate"`
	CreatedAt time.Time `json:"createdAt"`
}
