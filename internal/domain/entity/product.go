package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Product.
const (
	UnitUN = "UN" // unidad
	UnitKG = "KG" // kilogramo
	UnitL  = "L"  // litro
	UnitM  = "M"  // metro
)

// ValidUnit indica si la unidad pertenece a la enumeración fija.
func ValidUnit(u string) bool {
	switch u {
	case UnitUN, UnitKG, UnitL, UnitM:
		return true
	}
	return false
}

// Product representa un producto del inventario.
// Code es único; MinStock es el umbral para marcar stock bajo en el panel.
// El stock actual no vive aquí: se deriva de los movimientos (ver Stock).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Code        string // código único
	Unit        string // UN, KG, L, M
	MinStock    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
