package repository

import "github.com/jhoicas/product-inventory-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos. Append-only: no existen operaciones de update ni delete
// individuales (solo el cascade al borrar el producto).
type MovementRepository interface {
	// Create inserta el movimiento y completa ID y CreatedAt asignados por la BD.
	Create(movement *entity.StockMovement) error
	// LatestByProduct devuelve el movimiento más reciente o nil si no hay.
	LatestByProduct(productID int64) (*entity.StockMovement, error)
	ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error)
}
