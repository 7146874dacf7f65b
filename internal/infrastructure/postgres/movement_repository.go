package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/product-inventory-api/internal/domain/entity"
	"github.com/jhoicas/product-inventory-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla inventories es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento; la BD asigna ID (orden de inserción) y
// created_at, que se devuelven en la misma entidad.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	query := `
		INSERT INTO inventories (product_id, direction, quantity, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Direction, movement.Quantity, note,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// LatestByProduct devuelve el movimiento más reciente o nil si no hay.
// Desempata por id para ajustes commiteados en el mismo instante.
func (r *MovementRepo) LatestByProduct(productID int64) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, direction, quantity, note, created_at
		FROM inventories WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`
	m, err := r.scanRow(r.q.QueryRow(context.Background(), query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest movement: %w", err)
	}
	return m, nil
}

// ListByProduct lista el ledger de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, direction, quantity, note, created_at
		FROM inventories WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *MovementRepo) scanRow(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var note *string
	if err := row.Scan(&m.ID, &m.ProductID, &m.Direction, &m.Quantity, &note, &m.CreatedAt); err != nil {
		return nil, err
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}
