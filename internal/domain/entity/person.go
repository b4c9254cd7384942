package entity

import "time"

// Tipos válidos para Person.
const (
	PersonCliente     = "CLIENTE"
	PersonFornecedor  = "FORNECEDOR"
	PersonFuncionario = "FUNCIONARIO"
)

// ValidPersonType indica si el tipo pertenece a la enumeración fija.
func ValidPersonType(t string) bool {
	switch t {
	case PersonCliente, PersonFornecedor, PersonFuncionario:
		return true
	}
	return false
}

// Person representa la parte que actúa en un movimiento de stock
// (cliente, proveedor o funcionario). Ciclo de vida independiente.
type Person struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Type      string // CLIENTE, FORNECEDOR, FUNCIONARIO
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
