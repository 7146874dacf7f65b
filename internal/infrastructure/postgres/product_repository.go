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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// selectWithTags columnas + agregación de tags usada por las lecturas.
// El FILTER descarta los NULL del LEFT JOIN; sin tags queda array vacío.
const selectWithTags = `
	SELECT p.id, p.name, p.description, p.price, p.current_stock, p.created_at, p.updated_at,
	       COALESCE(array_agg(DISTINCT t.name) FILTER (WHERE t.name IS NOT NULL), '{}') AS tags
	FROM products p
	LEFT JOIN product_tags pt ON pt.product_id = p.id
	LEFT JOIN tags t ON t.id = pt.tag_id`

// Create persiste un nuevo producto. Stock inicia en 0; la BD asigna ID y timestamps.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, current_stock)
		VALUES ($1, $2, $3, 0)
		RETURNING id, current_stock, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price,
	).Scan(&product.ID, &product.CurrentStock, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (sin tags), o nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, current_stock, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CurrentStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetWithTags obtiene un producto con sus tags agregados, o nil si no existe.
func (r *ProductRepo) GetWithTags(id int64) (*entity.Product, error) {
	query := selectWithTags + `
	WHERE p.id = $1
	GROUP BY p.id`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CurrentStock, &p.CreatedAt, &p.UpdatedAt, &p.Tags,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product with tags: %w", err)
	}
	return &p, nil
}

// ListWithTags lista productos con tags agregados aplicando los filtros.
// El filtro por tag usa EXISTS para no interferir con la agregación.
func (r *ProductRepo) ListWithTags(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := selectWithTags
	var args []any
	pos := 1
	where := ""
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.NamePattern != "" {
		and(fmt.Sprintf("p.name ILIKE $%d", pos))
		args = append(args, "%"+filter.NamePattern+"%")
		pos++
	}
	if filter.MinStock != nil {
		and(fmt.Sprintf("p.current_stock >= $%d", pos))
		args = append(args, *filter.MinStock)
		pos++
	}
	if filter.TagName != "" {
		and(fmt.Sprintf(`EXISTS (
			SELECT 1 FROM product_tags pt2
			JOIN tags t2 ON t2.id = pt2.tag_id
			WHERE pt2.product_id = p.id AND t2.name = $%d)`, pos))
		args = append(args, filter.TagName)
		pos++
	}
	query += where + `
	GROUP BY p.id
	ORDER BY p.id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CurrentStock,
			&p.CreatedAt, &p.UpdatedAt, &p.Tags); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción. No toca precio ni stock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto; movimientos y product_tags caen en cascada.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
// Serializa los ajustes concurrentes sobre el mismo producto; la espera queda
// acotada por los timeouts de la transacción, nunca indefinida.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, current_stock, created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CurrentStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// UpdateStock fija el contador denormalizado y refresca updated_at.
// Solo lo invoca el motor de ajustes, dentro de su transacción.
func (r *ProductRepo) UpdateStock(id int64, newStock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, newStock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}
