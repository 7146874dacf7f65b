package inventory

import (
	"context"

	"github.com/jhoicas/product-inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ajustes:
// si fn devuelve error la transacción completa se revierte sin efecto visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		tagRepo repository.TagRepository,
	) error) error
}
