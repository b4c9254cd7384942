package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO estoque_movimentos (id, produto_id, pessoa_id, tipo, quantidade, data, observacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	notes := (*string)(nil)
	if movement.Notes != "" {
		notes = &movement.Notes
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.PersonID, movement.Type,
		movement.Quantity, movement.Date, notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, produto_id, pessoa_id, tipo, quantidade, data, observacao, created_at
		FROM estoque_movimentos WHERE id = $1`
	var m entity.StockMovement
	var notes *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.PersonID, &m.Type, &m.Quantity, &m.Date, &notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimento: %w", err)
	}
	if notes != nil {
		m.Notes = *notes
	}
	return &m, nil
}

// List lista movimientos con filtros opcionales, ordenados por fecha ascendente;
// empates se resuelven por orden de inserción (created_at, id).
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, produto_id, pessoa_id, tipo, quantidade, data, observacao, created_at
		FROM estoque_movimentos WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND produto_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND data >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND data <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY data ASC, created_at ASC, id ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var notes *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.PersonID, &m.Type, &m.Quantity, &m.Date, &notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		if notes != nil {
			m.Notes = *notes
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountByProduct cuenta movimientos que referencian un producto.
func (r *StockMovementRepo) CountByProduct(productID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM estoque_movimentos WHERE produto_id = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimentos by produto: %w", err)
	}
	return n, nil
}

// CountByPerson cuenta movimientos que referencian una persona.
func (r *StockMovementRepo) CountByPerson(personID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM estoque_movimentos WHERE pessoa_id = $1`, personID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimentos by pessoa: %w", err)
	}
	return n, nil
}
