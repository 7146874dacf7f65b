package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/product-inventory-api/internal/application/dto"
	"github.com/jhoicas/product-inventory-api/internal/application/inventory"
	"github.com/jhoicas/product-inventory-api/internal/domain"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
	"github.com/jhoicas/product-inventory-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se toca aquí:
// nace en 0 y solo lo muta el motor de ajustes.
type ProductUseCase struct {
	txRunner    inventory.TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner inventory.TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create crea el producto con stock 0 y, si vienen tags, los crea-o-reusa y
// los asocia dentro de la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	price := decimal.Zero
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		price = *in.Price
	}

	product := &entity.Product{
		Name:        name,
		Description: in.Description,
		Price:       price,
	}

	var resp *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		productRepo repository.ProductRepository,
		tagRepo repository.TagRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		tagNames, err := attachTags(tagRepo, product.ID, in.Tags)
		if err != nil {
			return err
		}
		product.Tags = tagNames
		r := dto.ToProductResponse(product)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// attachTags asegura que cada tag exista (creándolo si hace falta) y lo asocia
// al producto. Nombres repetidos en el request se asocian una sola vez.
func attachTags(tagRepo repository.TagRepository, productID int64, names []string) ([]string, error) {
	attached := []string{}
	seen := make(map[string]bool, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := tagRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			tag = &entity.Tag{Name: name}
			if err := tagRepo.Create(tag); err != nil {
				return nil, err
			}
		}
		if err := tagRepo.AttachToProduct(productID, tag.ID); err != nil {
			return nil, err
		}
		attached = append(attached, name)
	}
	return attached, nil
}

// GetByID obtiene un producto con sus tags, o nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetWithTags(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	r := dto.ToProductResponse(product)
	return &r, nil
}

// List lista productos con tags agregados, aplicando los filtros opcionales.
func (uc *ProductUseCase) List(q dto.ListProductsQuery) (*dto.ProductListResponse, error) {
	filter := repository.ProductFilter{
		TagName:     strings.TrimSpace(q.Tag),
		NamePattern: strings.TrimSpace(q.Name),
	}
	if q.MinStock != "" {
		min, err := strconv.ParseInt(q.MinStock, 10, 64)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.MinStock = &min
	}

	list, err := uc.productRepo.ListWithTags(filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{Total: len(list), Products: make([]dto.ProductResponse, 0, len(list))}
	for _, p := range list {
		resp.Products = append(resp.Products, dto.ToProductResponse(p))
	}
	return resp, nil
}

// Update modifica nombre y/o descripción. Sin campos editables devuelve
// ErrInvalidInput; producto inexistente devuelve nil.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == nil && in.Description == nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetWithTags(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	r := dto.ToProductResponse(product)
	return &r, nil
}

// Delete elimina el producto; movimientos y asociaciones de tags caen en
// cascada (FK ON DELETE CASCADE).
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.productRepo.Delete(id)
}
