package inventory

import (
	"context"

	"github.com/jhoicas/product-inventory-api/internal/domain"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
	"github.com/jhoicas/product-inventory-api/internal/domain/repository"
)

// AdjustStockUseCase registra movimientos de stock de forma transaccional:
// bloqueo de fila (SELECT FOR UPDATE), validación de no-negatividad, insert
// en el ledger y update del contador denormalizado como una sola unidad
// atómica, serializada por producto.
type AdjustStockUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository // lecturas fuera de transacción
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, movRepo: movRepo}
}

// AdjustStockInput entrada para un ajuste de stock.
type AdjustStockInput struct {
	ProductID int64
	Direction string // entity.DirectionIn | entity.DirectionOut
	Quantity  int64  // entero estrictamente positivo
	Note      string
}

// AdjustStockResult movimiento creado y stock resultante, ambos capturados
// dentro del scope transaccional que los produjo.
type AdjustStockResult struct {
	Movement *entity.StockMovement
	NewStock int64
}

// AdjustStock ejecuta el ajuste como una única transacción:
//
//  1. Bloquea la fila del producto (FOR UPDATE); dos ajustes concurrentes
//     sobre el mismo producto quedan totalmente serializados, cada uno ve
//     el efecto ya commiteado del anterior. Productos distintos no compiten.
//  2. Calcula el nuevo stock según la dirección.
//  3. Si quedaría negativo, revierte con ErrInsufficientStock: ni el ledger
//     ni el contador cambian.
//  4. Inserta el movimiento y actualiza el contador en la misma tx.
//
// El resultado se captura dentro del closure transaccional y se devuelve
// directamente tras el commit; no hay re-consulta de "último movimiento"
// posterior, que sería ambigua si otro ajuste commitea justo después.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, input AdjustStockInput) (*AdjustStockResult, error) {
	// Validar antes de abrir transacción
	if !entity.ValidDirection(input.Direction) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var result *AdjustStockResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.TagRepository,
	) error {
		// Bloquea la fila en products; también es el chequeo de existencia
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.CurrentStock + input.Quantity
		if input.Direction == entity.DirectionOut {
			newStock = product.CurrentStock - input.Quantity
		}
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}

		mov := &entity.StockMovement{
			ProductID: input.ProductID,
			Direction: input.Direction,
			Quantity:  input.Quantity,
			Note:      input.Note,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(input.ProductID, newStock); err != nil {
			return err
		}

		result = &AdjustStockResult{Movement: mov, NewStock: newStock}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LatestMovement devuelve el movimiento más reciente de un producto, o nil.
func (uc *AdjustStockUseCase) LatestMovement(productID int64) (*entity.StockMovement, error) {
	return uc.movRepo.LatestByProduct(productID)
}

// ListMovements lista el historial del ledger de un producto, más reciente primero.
func (uc *AdjustStockUseCase) ListMovements(productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movRepo.ListByProduct(productID, limit, offset)
}
