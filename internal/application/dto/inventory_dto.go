package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
)

// AdjustStockRequest body para POST /api/products/:id/stock.
// Quantity es decimal para aceptar número o string en el JSON; el caso de
// uso exige que sea un entero estrictamente positivo.
type AdjustStockRequest struct {
	Direction string          `json:"direction"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note,omitempty"`
}

// MovementResponse una entrada del ledger.
type MovementResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Direction string    `json:"direction"`
	Quantity  int64     `json:"quantity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AdjustStockResponse movimiento creado y stock resultante del ajuste.
type AdjustStockResponse struct {
	Movement MovementResponse `json:"movement"`
	NewStock int64            `json:"new_stock"`
}

// MovementListResponse historial paginado del ledger de un producto.
type MovementListResponse struct {
	Total     int                `json:"total"`
	Movements []MovementResponse `json:"movements"`
}

// ToMovementResponse mapea la entidad al DTO.
func ToMovementResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Direction: m.Direction,
		Quantity:  m.Quantity,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}
