package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. CurrentStock es un contador
// denormalizado: siempre igual a la suma firmada de sus movimientos en el
// ledger, y solo lo muta el motor de ajustes.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        decimal.Decimal
	CurrentStock int64
	Tags         []string // nombres de tags agregados en lectura (nunca nil)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
