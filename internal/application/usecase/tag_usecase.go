package usecase

import (
	"strings"

	"github.com/jhoicas/product-inventory-api/internal/application/dto"
	"github.com/jhoicas/product-inventory-api/internal/domain"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
	"github.com/jhoicas/product-inventory-api/internal/domain/repository"
)

// TagUseCase casos de uso para tags.
type TagUseCase struct {
	repo repository.TagRepository
}

// NewTagUseCase construye el caso de uso.
func NewTagUseCase(repo repository.TagRepository) *TagUseCase {
	return &TagUseCase{repo: repo}
}

// Create crea un tag. El nombre es obligatorio y único; duplicado devuelve
// domain.ErrDuplicate.
func (uc *TagUseCase) Create(in dto.CreateTagRequest) (*dto.TagResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	tag := &entity.Tag{Name: name}
	if err := uc.repo.Create(tag); err != nil {
		return nil, err
	}
	r := dto.ToTagResponse(tag)
	return &r, nil
}
