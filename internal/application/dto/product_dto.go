package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products. El stock inicial es
// siempre 0; solo los ajustes lo mutan. Tags es opcional (nombres).
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
}

// UpdateProductRequest body para PATCH /api/products/:id.
// Solo nombre y descripción son editables; precio y stock tienen sus
// propios flujos.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListProductsQuery filtros de GET /api/products.
type ListProductsQuery struct {
	Tag      string `query:"tag"`
	Name     string `query:"name"`
	MinStock string `query:"min_stock"`
}

// ProductResponse representación de un producto con sus tags agregados.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	CurrentStock int64           `json:"current_stock"`
	Tags         []string        `json:"tags"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

// ToProductResponse mapea la entidad al DTO. Tags nunca va como null.
func ToProductResponse(p *entity.Product) ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CurrentStock: p.CurrentStock,
		Tags:         tags,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
