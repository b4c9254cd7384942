package stock

import (
	"context"

	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el insert del movimiento y la actualización del stock sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
