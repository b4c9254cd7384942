package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto. Sin fila registrada equivale a cero.
func (r *StockRepo) Get(productID string) (*entity.Stock, error) {
	query := `
		SELECT produto_id, quantidade, updated_at
		FROM estoque WHERE produto_id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get estoque: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	query := `
		SELECT produto_id, quantidade, updated_at
		FROM estoque WHERE produto_id = $1
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get estoque for update: %w", err)
	}
	return &s, nil
}

// AddQuantity suma delta a la cantidad del producto, creando la fila si no
// existe. El UPDATE es relativo (quantidade = estoque.quantidade + delta):
// cuando el producto todavía no tiene fila, FOR UPDATE no bloqueó nada y un
// escritor concurrente puede haber insertado entre la lectura y este write;
// la suma relativa garantiza que ningún movimiento se pierda del agregado.
func (r *StockRepo) AddQuantity(productID string, delta decimal.Decimal) error {
	query := `
		INSERT INTO estoque (produto_id, quantidade, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (produto_id)
		DO UPDATE SET quantidade = estoque.quantidade + EXCLUDED.quantidade, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, delta)
	if err != nil {
		return fmt.Errorf("add estoque: %w", err)
	}
	return nil
}

// ListWithProducts devuelve cada producto con su cantidad en mano
// (cero si nunca tuvo movimientos), ordenado por nombre.
func (r *StockRepo) ListWithProducts() ([]*repository.StockItem, error) {
	query := `
		SELECT p.id, p.nome, p.descricao, p.preco, p.codigo, p.unidade, p.estoque_minimo, p.created_at, p.updated_at,
		       COALESCE(e.quantidade, 0), COALESCE(e.updated_at, p.created_at)
		FROM produtos p
		LEFT JOIN estoque e ON e.produto_id = p.id
		ORDER BY p.nome ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list estoque: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockItem
	for rows.Next() {
		var it repository.StockItem
		if err := rows.Scan(
			&it.Product.ID, &it.Product.Name, &it.Product.Description, &it.Product.Price,
			&it.Product.Code, &it.Product.Unit, &it.Product.MinStock, &it.Product.CreatedAt, &it.Product.UpdatedAt,
			&it.Quantity.Quantity, &it.Quantity.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan estoque: %w", err)
		}
		it.Quantity.ProductID = it.Product.ID
		list = append(list, &it)
	}
	return list, rows.Err()
}
