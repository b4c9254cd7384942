package repository

import (
	"time"

	"github.com/oliveiradev/estoque-api/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID string
	Type      string // ENTRADA, SAIDA o vacío
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia para movimientos.
// Los movimientos son append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve los movimientos ordenados por fecha ascendente;
	// empates se resuelven por orden de inserción.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	CountByProduct(productID string) (int, error)
	CountByPerson(personID string) (int, error)
}
