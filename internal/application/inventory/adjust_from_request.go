package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/product-inventory-api/internal/application/dto"
	"github.com/jhoicas/product-inventory-api/internal/domain"
)

// AdjustStockFromRequest adapta el request HTTP al caso de uso AdjustStock.
// La cantidad llega como decimal (acepta número o string en el JSON) y debe
// ser un entero estrictamente positivo.
func (uc *AdjustStockUseCase) AdjustStockFromRequest(ctx context.Context, productID int64, in dto.AdjustStockRequest) (*AdjustStockResult, error) {
	qty, ok := integerQuantity(in.Quantity)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	return uc.AdjustStock(ctx, AdjustStockInput{
		ProductID: productID,
		Direction: in.Direction,
		Quantity:  qty,
		Note:      in.Note,
	})
}

// integerQuantity convierte el decimal a int64 solo si es un entero exacto.
func integerQuantity(d decimal.Decimal) (int64, bool) {
	if !d.IsInteger() {
		return 0, false
	}
	if !d.Equal(decimal.NewFromInt(d.IntPart())) {
		// fuera de rango int64
		return 0, false
	}
	return d.IntPart(), true
}
