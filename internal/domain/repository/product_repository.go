package repository

import "github.com/jhoicas/product-inventory-api/internal/domain/entity"

// ProductFilter filtros opcionales para el listado de productos.
type ProductFilter struct {
	TagName     string // nombre exacto de tag (vacío = sin filtro)
	NamePattern string // substring del nombre, case-insensitive
	MinStock    *int64 // cota inferior inclusiva de stock
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateStock son exclusivos del motor de ajustes y solo
// tienen sentido dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetWithTags(id int64) (*entity.Product, error)
	ListWithTags(filter ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id int64) (*entity.Product, error)
	// UpdateStock fija el contador denormalizado y refresca updated_at.
	UpdateStock(id int64, newStock int64) error
}
