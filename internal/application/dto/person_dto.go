package dto

import "time"

// CreatePersonRequest body para POST /api/pessoas.
type CreatePersonRequest struct {
	Name    string `json:"nome" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"telefone" validate:"required,max=30"`
	Type    string `json:"tipo" validate:"required,oneof=CLIENTE FORNECEDOR FUNCIONARIO"`
	Address string `json:"endereco" validate:"required,max=300"`
}

// UpdatePersonRequest body para PUT /api/pessoas/:id (campos opcionales).
type UpdatePersonRequest struct {
	Name    *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"telefone" validate:"omitempty,max=30"`
	Type    *string `json:"tipo" validate:"omitempty,oneof=CLIENTE FORNECEDOR FUNCIONARIO"`
	Address *string `json:"endereco" validate:"omitempty,max=300"`
}

// PersonResponse salida de una persona.
type PersonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Type      string    `json:"tipo"`
	Address   string    `json:"endereco"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PersonListResponse listado paginado de personas.
type PersonListResponse struct {
	Items  []PersonResponse `json:"items"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
