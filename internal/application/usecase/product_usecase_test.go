package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/application/usecase"
	"github.com/oliveiradev/estoque-api/internal/domain"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.products, id); return nil }

// fakeMovementCounts solo cuenta referencias; el resto no se usa en estos tests.
type fakeMovementCounts struct {
	byProduct map[string]int
	byPerson  map[string]int
}

func (f *fakeMovementCounts) Create(*entity.StockMovement) error { return nil }
func (f *fakeMovementCounts) GetByID(string) (*entity.StockMovement, error) {
	return nil, nil
}
func (f *fakeMovementCounts) List(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (f *fakeMovementCounts) CountByProduct(productID string) (int, error) {
	return f.byProduct[productID], nil
}
func (f *fakeMovementCounts) CountByPerson(personID string) (int, error) {
	return f.byPerson[personID], nil
}

func newProductFixture() (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementCounts) {
	repo := &fakeProductRepo{products: map[string]*entity.Product{}}
	counts := &fakeMovementCounts{byProduct: map[string]int{}, byPerson: map[string]int{}}
	return usecase.NewProductUseCase(repo, counts), repo, counts
}

func createCable(t *testing.T, uc *usecase.ProductUseCase) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:        "Cabo HDMI 2m",
		Description: "Cabo HDMI 2.1 de 2 metros",
		Price:       decimal.NewFromFloat(29.90),
		Code:        "CB-HDMI-2",
		Unit:        entity.UnitUN,
		MinStock:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	return out
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc, _, _ := newProductFixture()
	createCable(t, uc)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "Otro cabo",
		Description: "mismo código",
		Price:       decimal.NewFromFloat(19.90),
		Code:        "CB-HDMI-2",
		Unit:        entity.UnitUN,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_UnidadInvalida(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "Arena",
		Description: "Arena fina",
		Price:       decimal.NewFromFloat(5),
		Code:        "AR-01",
		Unit:        "TONELADA",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_MinimoNegativo(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "Cabo",
		Description: "Cabo",
		Price:       decimal.NewFromFloat(10),
		Code:        "CB-01",
		Unit:        entity.UnitUN,
		MinStock:    decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_CamposParciales(t *testing.T) {
	uc, _, _ := newProductFixture()
	created := createCable(t, uc)

	newName := "Cabo HDMI 2m premium"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, newName, out.Name)
	assert.Equal(t, created.Code, out.Code, "los campos no enviados deben conservarse")
	assert.True(t, out.Price.Equal(created.Price))
}

func TestProductUpdate_CodigoDeOtroProducto(t *testing.T) {
	uc, _, _ := newProductFixture()
	createCable(t, uc)
	other, err := uc.Create(dto.CreateProductRequest{
		Name:        "Cabo USB-C",
		Description: "Cabo USB-C de 1 metro",
		Price:       decimal.NewFromFloat(15),
		Code:        "CB-USBC-1",
		Unit:        entity.UnitUN,
	})
	require.NoError(t, err)

	taken := "CB-HDMI-2"
	_, err = uc.Update(other.ID, dto.UpdateProductRequest{Code: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductDelete_ConMovimientos_Conflicto(t *testing.T) {
	uc, _, counts := newProductFixture()
	created := createCable(t, uc)
	counts.byProduct[created.ID] = 2

	err := uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un producto referenciado por movimientos no se puede eliminar")
}

func TestProductDelete_SinMovimientos(t *testing.T) {
	uc, repo, _ := newProductFixture()
	created := createCable(t, uc)

	require.NoError(t, uc.Delete(created.ID))
	assert.NotContains(t, repo.products, created.ID)
}

func TestProductGetByID_Inexistente_Nil(t *testing.T) {
	uc, _, _ := newProductFixture()

	out, err := uc.GetByID("99999999-9999-9999-9999-999999999999")
	require.NoError(t, err)
	assert.Nil(t, out)
}
