package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/domain"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

// PersonUseCase casos de uso CRUD para personas (clientes, proveedores, funcionarios).
type PersonUseCase struct {
	repo    repository.PersonRepository
	movRepo repository.StockMovementRepository
}

// NewPersonUseCase construye el caso de uso.
func NewPersonUseCase(repo repository.PersonRepository, movRepo repository.StockMovementRepository) *PersonUseCase {
	return &PersonUseCase{repo: repo, movRepo: movRepo}
}

// Create crea una nueva persona.
func (uc *PersonUseCase) Create(in dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	if !entity.ValidPersonType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	person := &entity.Person{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Type:      in.Type,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(person); err != nil {
		return nil, err
	}
	return toPersonResponse(person), nil
}

// GetByID obtiene una persona por ID. Devuelve nil si no existe.
func (uc *PersonUseCase) GetByID(id string) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, nil
	}
	return toPersonResponse(person), nil
}

// Update actualiza una persona existente con los campos presentes.
func (uc *PersonUseCase) Update(id string, in dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	person, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, nil
	}
	if in.Name != nil {
		person.Name = *in.Name
	}
	if in.Email != nil {
		person.Email = *in.Email
	}
	if in.Phone != nil {
		person.Phone = *in.Phone
	}
	if in.Type != nil {
		if !entity.ValidPersonType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		person.Type = *in.Type
	}
	if in.Address != nil {
		person.Address = *in.Address
	}
	person.UpdatedAt = time.Now()
	if err := uc.repo.Update(person); err != nil {
		return nil, err
	}
	return toPersonResponse(person), nil
}

// List lista personas con paginación.
func (uc *PersonUseCase) List(limit, offset int) (*dto.PersonListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPersonResponse(p))
	}
	return &dto.PersonListResponse{Items: items, Limit: limit, Offset: offset}, nil
}

// Delete elimina una persona. Si existen movimientos que la referencian
// se rechaza con ErrConflict.
func (uc *PersonUseCase) Delete(id string) error {
	person, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.movRepo.CountByPerson(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toPersonResponse(p *entity.Person) *dto.PersonResponse {
	return &dto.PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Type:      p.Type,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
