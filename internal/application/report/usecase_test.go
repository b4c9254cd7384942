package report_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/application/report"
	"github.com/oliveiradev/estoque-api/internal/application/stock"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	err      error // si está seteado, GetByID falla
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCode(code string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(p *entity.Product) error                 { return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(id string) error { return nil }

type fakePersonRepo struct {
	people map[string]*entity.Person
}

func (f *fakePersonRepo) Create(p *entity.Person) error { f.people[p.ID] = p; return nil }
func (f *fakePersonRepo) GetByID(id string) (*entity.Person, error) {
	return f.people[id], nil
}
func (f *fakePersonRepo) Update(p *entity.Person) error { return nil }
func (f *fakePersonRepo) List(limit, offset int) ([]*entity.Person, error) {
	return nil, nil
}
func (f *fakePersonRepo) Delete(id string) error { return nil }

// fakeMovementRepo honra Limit/Offset, igual que el repositorio real.
type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	return nil, nil
}
func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	matched := make([]*entity.StockMovement, 0, len(f.movements))
	for _, m := range f.movements {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		matched = append(matched, m)
	}
	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}
func (f *fakeMovementRepo) CountByProduct(string) (int, error) { return 0, nil }
func (f *fakeMovementRepo) CountByPerson(string) (int, error)  { return 0, nil }

type fakeStockRepo struct{}

func (f *fakeStockRepo) Get(productID string) (*entity.Stock, error) {
	return &entity.Stock{ProductID: productID, Quantity: decimal.Zero}, nil
}
func (f *fakeStockRepo) GetForUpdate(productID string) (*entity.Stock, error) {
	return f.Get(productID)
}
func (f *fakeStockRepo) AddQuantity(string, decimal.Decimal) error { return nil }
func (f *fakeStockRepo) ListWithProducts() ([]*repository.StockItem, error) {
	return nil, nil
}

type fakeTxRunner struct{}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	return fn(&fakeMovementRepo{}, &fakeStockRepo{})
}

// capturingExporter retiene los movimientos recibidos en vez de serializar.
type capturingExporter struct {
	received []report.ExportMovement
}

func (c *capturingExporter) ExportMovements(movements []report.ExportMovement, _ time.Time) ([]byte, error) {
	c.received = movements
	return []byte("<ok/>"), nil
}

type stubPDFGenerator struct{}

func (stubPDFGenerator) GenerateStockReport(context.Context, []dto.StockItemResponse, time.Time) ([]byte, error) {
	return []byte("%PDF"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	prodID   = "11111111-1111-1111-1111-111111111111"
	personID = "22222222-2222-2222-2222-222222222222"
)

func newReportFixture(t *testing.T, totalMovements int) (*report.ReportUseCase, *capturingExporter, *fakeProductRepo) {
	t.Helper()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		prodID: {ID: prodID, Name: "Cabo HDMI 2m", Code: "CB-HDMI-2", Unit: entity.UnitUN},
	}}
	people := &fakePersonRepo{people: map[string]*entity.Person{
		personID: {ID: personID, Name: "Proveedor Uno", Type: entity.PersonFornecedor},
	}}
	movRepo := &fakeMovementRepo{}
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < totalMovements; i++ {
		movRepo.movements = append(movRepo.movements, &entity.StockMovement{
			ID:        fmt.Sprintf("mov-%03d", i),
			ProductID: prodID,
			PersonID:  personID,
			Type:      entity.MovementEntrada,
			Quantity:  decimal.NewFromInt(1),
			Date:      base.Add(time.Duration(i) * time.Minute),
		})
	}
	ledger := stock.NewLedgerUseCase(&fakeTxRunner{}, products, people, movRepo, &fakeStockRepo{})
	exporter := &capturingExporter{}
	uc := report.NewReportUseCase(ledger, products, people, stubPDFGenerator{}, exporter)
	return uc, exporter, products
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MovementsXML
// ──────────────────────────────────────────────────────────────────────────────

// El export de auditoría debe recorrer el historial completo, no una página:
// con 237 movimientos (más de dos páginas internas) todos llegan al archivo.
func TestMovementsXML_ExportaHistorialCompleto(t *testing.T) {
	uc, exporter, _ := newReportFixture(t, 237)

	_, err := uc.MovementsXML(context.Background(), dto.MovementListQuery{})
	require.NoError(t, err)

	require.Len(t, exporter.received, 237, "ningún movimiento debe quedar fuera del export")
	assert.Equal(t, "mov-000", exporter.received[0].ID)
	assert.Equal(t, "mov-236", exporter.received[236].ID)
}

// La paginación que venga del caller se ignora: el export siempre es completo.
func TestMovementsXML_IgnoraPaginacionDelCaller(t *testing.T) {
	uc, exporter, _ := newReportFixture(t, 150)

	q := dto.MovementListQuery{}
	q.Limit = 20
	q.Offset = 40
	_, err := uc.MovementsXML(context.Background(), q)
	require.NoError(t, err)

	assert.Len(t, exporter.received, 150)
}

// Los movimientos exportados van enriquecidos con los nombres resueltos.
func TestMovementsXML_EnriqueceNombres(t *testing.T) {
	uc, exporter, _ := newReportFixture(t, 3)

	_, err := uc.MovementsXML(context.Background(), dto.MovementListQuery{})
	require.NoError(t, err)

	require.NotEmpty(t, exporter.received)
	assert.Equal(t, "Cabo HDMI 2m", exporter.received[0].ProductName)
	assert.Equal(t, "CB-HDMI-2", exporter.received[0].ProductCode)
	assert.Equal(t, "Proveedor Uno", exporter.received[0].PersonName)
}

// Un fallo de almacenamiento al resolver nombres debe propagarse, no degradar
// silenciosamente el archivo exportado.
func TestMovementsXML_FalloDeLookup_Propagado(t *testing.T) {
	uc, exporter, products := newReportFixture(t, 5)
	products.err = errors.New("conexión perdida")

	_, err := uc.MovementsXML(context.Background(), dto.MovementListQuery{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "conexión perdida")
	assert.Empty(t, exporter.received, "con error no debe generarse archivo")
}
