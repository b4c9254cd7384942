package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/oliveiradev/estoque-api/internal/domain"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo implementación del puerto PersonRepository sobre PostgreSQL (usable con pool o tx).
type PersonRepo struct {
	q Querier
}

// NewPersonRepository construye el adaptador de persistencia para personas. Pasar pool o tx (Querier).
func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

// Create persiste una nueva persona.
func (r *PersonRepo) Create(person *entity.Person) error {
	query := `
		INSERT INTO pessoas (id, nome, email, telefone, tipo, endereco, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		person.ID, person.Name, person.Email, person.Phone, person.Type, person.Address,
		person.CreatedAt, person.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pessoa: %w", err)
	}
	return nil
}

// GetByID obtiene una persona por ID.
func (r *PersonRepo) GetByID(id string) (*entity.Person, error) {
	query := `
		SELECT id, nome, email, telefone, tipo, endereco, created_at, updated_at
		FROM pessoas WHERE id = $1`
	var p entity.Person
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.Type, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pessoa: %w", err)
	}
	return &p, nil
}

// Update actualiza una persona existente.
func (r *PersonRepo) Update(person *entity.Person) error {
	query := `
		UPDATE pessoas SET nome = $2, email = $3, telefone = $4, tipo = $5, endereco = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		person.ID, person.Name, person.Email, person.Phone, person.Type, person.Address, person.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pessoa: %w", err)
	}
	return nil
}

// List lista personas con paginación.
func (r *PersonRepo) List(limit, offset int) ([]*entity.Person, error) {
	query := `
		SELECT id, nome, email, telefone, tipo, endereco, created_at, updated_at
		FROM pessoas ORDER BY nome ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pessoas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Person
	for rows.Next() {
		var p entity.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Type, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pessoa: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una persona por ID.
func (r *PersonRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pessoas WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete pessoa: %w", err)
	}
	return nil
}
