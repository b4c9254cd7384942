package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// ValidRole indica si el rol pertenece a la enumeración fija.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // ADMIN, USER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
