package dto

import (
	"time"

	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
)

// CreateTagRequest body para POST /api/tags.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// TagResponse representación de un tag.
type TagResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTagResponse mapea la entidad al DTO.
func ToTagResponse(t *entity.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}
