package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/estoque/movimentacoes.
type RegisterMovementRequest struct {
	ProductID string          `json:"produto" validate:"required,uuid"`
	PersonID  string          `json:"pessoa" validate:"required,uuid"`
	Type      string          `json:"tipo" validate:"required,oneof=ENTRADA SAIDA"`
	Quantity  decimal.Decimal `json:"quantidade" validate:"required"`
	Notes     string          `json:"observacao" validate:"omitempty,max=500"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"produto"`
	PersonID  string          `json:"pessoa"`
	Type      string          `json:"tipo"`
	Quantity  decimal.Decimal `json:"quantidade"`
	Date      time.Time       `json:"data"`
	Notes     string          `json:"observacao,omitempty"`
}

// MovementListQuery filtros de GET /api/estoque/movimentacoes.
type MovementListQuery struct {
	ProductID string `query:"produto" validate:"omitempty,uuid"`
	Type      string `query:"tipo" validate:"omitempty,oneof=ENTRADA SAIDA"`
	From      string `query:"de" validate:"omitempty"`
	To        string `query:"ate" validate:"omitempty"`
	PageRequest
}

// StockItemResponse producto con cantidad en mano y estado para el panel.
type StockItemResponse struct {
	ProductID string          `json:"produto"`
	Name      string          `json:"nome"`
	Code      string          `json:"codigo"`
	Unit      string          `json:"unidade"`
	Quantity  decimal.Decimal `json:"quantidade"`
	MinStock  decimal.Decimal `json:"estoqueMinimo"`
	Status    string          `json:"status"` // out, low, normal
}
