package repository

import "github.com/oliveiradev/estoque-api/internal/domain/entity"

// PersonRepository define el puerto de persistencia para Person (DIP).
type PersonRepository interface {
	Create(person *entity.Person) error
	GetByID(id string) (*entity.Person, error)
	Update(person *entity.Person) error
	List(limit, offset int) ([]*entity.Person, error)
	Delete(id string) error
}
