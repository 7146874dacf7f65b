package entity

import "time"

// Direcciones de movimiento de stock.
const (
	DirectionIn  = "in"  // entrada
	DirectionOut = "out" // salida
)

// ValidDirection indica si s es una dirección de movimiento conocida.
func ValidDirection(s string) bool {
	return s == DirectionIn || s == DirectionOut
}

// StockMovement es una entrada del ledger: un cambio de stock registrado.
// Inmutable una vez creado; el ID es asignado por la BD en orden de inserción.
type StockMovement struct {
	ID        int64
	ProductID int64
	Direction string
	Quantity  int64 // siempre positivo; la dirección da el signo
	Note      string
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con el signo de la dirección
// (positiva para entradas, negativa para salidas).
func (m StockMovement) SignedQuantity() int64 {
	if m.Direction == DirectionOut {
		return -m.Quantity
	}
	return m.Quantity
}
