package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el stock actual de un producto (fila materializada).
// Se mantiene en la misma transacción que inserta cada movimiento, por lo que
// siempre equivale a sum(entradas) - sum(salidas).
type Stock struct {
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
