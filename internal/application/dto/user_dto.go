package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name     string `json:"nome" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password opcional; si viene, se re-hashea.
type UpdateUserRequest struct {
	Name     *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"senha" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN USER"`
}

// UserResponse salida de un usuario. Nunca incluye la senha ni su hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items  []UserResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
