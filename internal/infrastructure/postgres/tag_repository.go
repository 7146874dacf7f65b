package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/product-inventory-api/internal/domain"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
	"github.com/jhoicas/product-inventory-api/internal/domain/repository"
)

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo implementación del puerto TagRepository sobre PostgreSQL
// (usable con pool o tx).
type TagRepo struct {
	q Querier
}

// NewTagRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create inserta el tag; nombre duplicado devuelve domain.ErrDuplicate.
func (r *TagRepo) Create(tag *entity.Tag) error {
	query := `
		INSERT INTO tags (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query, tag.Name).
		Scan(&tag.ID, &tag.CreatedAt, &tag.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByName devuelve el tag o nil si no existe.
func (r *TagRepo) GetByName(name string) (*entity.Tag, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM tags WHERE name = $1`
	var t entity.Tag
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag by name: %w", err)
	}
	return &t, nil
}

// AttachToProduct asocia el tag al producto. El par repetido (constraint
// único) se trata como no-op.
func (r *TagRepo) AttachToProduct(productID, tagID int64) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO product_tags (product_id, tag_id)
		 VALUES ($1, $2)
		 ON CONFLICT (product_id, tag_id) DO NOTHING`,
		productID, tagID,
	)
	if err != nil {
		return fmt.Errorf("attach tag: %w", err)
	}
	return nil
}
