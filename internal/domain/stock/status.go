package stock

import "github.com/shopspring/decimal"

// Estados de stock para el panel (servicio de dominio).
const (
	StatusOut    = "out"    // cantidad <= 0
	StatusLow    = "low"    // cantidad <= estoque mínimo
	StatusNormal = "normal" // por encima del mínimo
)

// Status clasifica la cantidad en mano de un producto contra su estoque mínimo.
// out tiene prioridad sobre low: un producto en cero con mínimo cero está "out".
func Status(quantity, minStock decimal.Decimal) string {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return StatusOut
	}
	if quantity.LessThanOrEqual(minStock) {
		return StatusLow
	}
	return StatusNormal
}
