package repository

import "github.com/jhoicas/product-inventory-api/internal/domain/entity"

// TagRepository define el puerto de persistencia para Tag y la relación
// muchos-a-muchos con productos.
type TagRepository interface {
	// Create inserta el tag; nombre duplicado devuelve domain.ErrDuplicate.
	Create(tag *entity.Tag) error
	// GetByName devuelve el tag o nil si no existe.
	GetByName(name string) (*entity.Tag, error)
	AttachToProduct(productID, tagID int64) error
}
