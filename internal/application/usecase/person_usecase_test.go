package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/application/usecase"
	"github.com/oliveiradev/estoque-api/internal/domain"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
)

type fakePersonRepo struct {
	people map[string]*entity.Person
}

func (f *fakePersonRepo) Create(p *entity.Person) error { f.people[p.ID] = p; return nil }
func (f *fakePersonRepo) GetByID(id string) (*entity.Person, error) {
	return f.people[id], nil
}
func (f *fakePersonRepo) Update(p *entity.Person) error { f.people[p.ID] = p; return nil }
func (f *fakePersonRepo) List(limit, offset int) ([]*entity.Person, error) {
	out := make([]*entity.Person, 0, len(f.people))
	for _, p := range f.people {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakePersonRepo) Delete(id string) error { delete(f.people, id); return nil }

func newPersonFixture() (*usecase.PersonUseCase, *fakePersonRepo, *fakeMovementCounts) {
	repo := &fakePersonRepo{people: map[string]*entity.Person{}}
	counts := &fakeMovementCounts{byProduct: map[string]int{}, byPerson: map[string]int{}}
	return usecase.NewPersonUseCase(repo, counts), repo, counts
}

func createSupplier(t *testing.T, uc *usecase.PersonUseCase) *dto.PersonResponse {
	t.Helper()
	out, err := uc.Create(dto.CreatePersonRequest{
		Name:    "Distribuidora Center",
		Email:   "contato@center.com.br",
		Phone:   "+55 11 98888-0000",
		Type:    entity.PersonFornecedor,
		Address: "Av. Paulista 1000, São Paulo",
	})
	require.NoError(t, err)
	return out
}

func TestPersonCreate_TipoInvalido(t *testing.T) {
	uc, _, _ := newPersonFixture()

	_, err := uc.Create(dto.CreatePersonRequest{
		Name:    "Alguien",
		Email:   "alguien@mail.com",
		Phone:   "000",
		Type:    "SOCIO",
		Address: "Rua X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPersonUpdate_CamposParciales(t *testing.T) {
	uc, _, _ := newPersonFixture()
	created := createSupplier(t, uc)

	newPhone := "+55 11 97777-1111"
	out, err := uc.Update(created.ID, dto.UpdatePersonRequest{Phone: &newPhone})
	require.NoError(t, err)

	assert.Equal(t, newPhone, out.Phone)
	assert.Equal(t, created.Name, out.Name, "los campos no enviados deben conservarse")
	assert.Equal(t, created.Type, out.Type)
}

func TestPersonDelete_ConMovimientos_Conflicto(t *testing.T) {
	uc, _, counts := newPersonFixture()
	created := createSupplier(t, uc)
	counts.byPerson[created.ID] = 1

	err := uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una persona referenciada por movimientos no se puede eliminar")
}

func TestPersonDelete_Inexistente(t *testing.T) {
	uc, _, _ := newPersonFixture()

	err := uc.Delete("99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
