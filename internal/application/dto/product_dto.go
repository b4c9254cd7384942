package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/produtos.
type CreateProductRequest struct {
	Name        string          `json:"nome" validate:"required,min=1,max=200"`
	Description string          `json:"descricao" validate:"required,max=1000"`
	Price       decimal.Decimal `json:"preco" validate:"required"`
	Code        string          `json:"codigo" validate:"required,min=1,max=50"`
	Unit        string          `json:"unidade" validate:"required,oneof=UN KG L M"`
	MinStock    decimal.Decimal `json:"estoqueMinimo"`
}

// UpdateProductRequest body para PUT /api/produtos/:id (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"descricao" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"preco"`
	Code        *string          `json:"codigo" validate:"omitempty,min=1,max=50"`
	Unit        *string          `json:"unidade" validate:"omitempty,oneof=UN KG L M"`
	MinStock    *decimal.Decimal `json:"estoqueMinimo"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Code        string          `json:"codigo"`
	Unit        string          `json:"unidade"`
	MinStock    decimal.Decimal `json:"estoqueMinimo"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
