package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementEntrada = "ENTRADA" // entrada
	MovementSaida   = "SAIDA"   // salida
)

// ValidMovementType indica si el tipo es ENTRADA o SAIDA.
func ValidMovementType(t string) bool {
	return t == MovementEntrada || t == MovementSaida
}

// StockMovement representa un movimiento de stock (entrada o salida).
// Es un hecho inmutable: una vez registrado no se modifica ni se elimina.
type StockMovement struct {
	ID        string
	ProductID string
	PersonID  string
	Type      string          // ENTRADA, SAIDA
	Quantity  decimal.Decimal // siempre > 0; el signo lo da Type
	Date      time.Time       // sellado al crear
	Notes     string
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con signo según el tipo
// (positiva para ENTRADA, negativa para SAIDA).
func (m *StockMovement) SignedQuantity() decimal.Decimal {
	if m.Type == MovementSaida {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
