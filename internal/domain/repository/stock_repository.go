package repository

import (
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockItem producto con su cantidad en mano, para el panel de estoque.
type StockItem struct {
	Product  entity.Product
	Quantity entity.Stock
}

// StockRepository define el puerto para el stock materializado por producto.
type StockRepository interface {
	Get(productID string) (*entity.Stock, error)
	// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(productID string) (*entity.Stock, error)
	// AddQuantity suma delta (con signo) a la cantidad del producto, creando
	// la fila si no existe. La escritura es relativa: dos escritores
	// concurrentes sobre un producto sin fila (donde FOR UPDATE no bloquea
	// nada) acumulan ambos deltas en vez de pisarse.
	AddQuantity(productID string, delta decimal.Decimal) error
	// ListWithProducts devuelve cada producto con su cantidad en mano
	// (cero si nunca tuvo movimientos).
	ListWithProducts() ([]*StockItem, error)
}
