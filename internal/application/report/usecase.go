package report

import (
	"context"
	"time"

	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/application/stock"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF del panel de estoque y el export XML
// del historial de movimientos.
type ReportUseCase struct {
	ledger      *stock.LedgerUseCase
	productRepo repository.ProductRepository
	personRepo  repository.PersonRepository
	pdfGen      StockReportGenerator
	exporter    MovementExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	ledger *stock.LedgerUseCase,
	productRepo repository.ProductRepository,
	personRepo repository.PersonRepository,
	pdfGen StockReportGenerator,
	exporter MovementExporter,
) *ReportUseCase {
	return &ReportUseCase{
		ledger:      ledger,
		productRepo: productRepo,
		personRepo:  personRepo,
		pdfGen:      pdfGen,
		exporter:    exporter,
	}
}

// StockReportPDF genera el PDF del panel de estoque actual.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	items, err := uc.ledger.Panel(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateStockReport(ctx, items, time.Now())
}

// exportPageSize tamaño de página interno al recorrer el historial completo.
const exportPageSize = 100

// MovementsXML exporta el historial COMPLETO de movimientos que cumplen los
// filtros dados, enriquecido con nombre/código de producto y nombre de
// persona. Es un artefacto de auditoría: ignora la paginación del caller y
// recorre todas las páginas internamente, sin truncar.
func (uc *ReportUseCase) MovementsXML(ctx context.Context, q dto.MovementListQuery) ([]byte, error) {
	var movements []dto.MovementResponse
	q.Limit = exportPageSize
	q.Offset = 0
	for {
		page, err := uc.ledger.ListMovements(ctx, q)
		if err != nil {
			return nil, err
		}
		movements = append(movements, page...)
		if len(page) < exportPageSize {
			break
		}
		q.Offset += exportPageSize
	}

	// Cache local de nombres: el historial repite producto y persona.
	productNames := map[string][2]string{}
	personNames := map[string]string{}

	out := make([]ExportMovement, 0, len(movements))
	for _, m := range movements {
		exp := ExportMovement{MovementResponse: m}
		if v, ok := productNames[m.ProductID]; ok {
			exp.ProductName, exp.ProductCode = v[0], v[1]
		} else {
			p, err := uc.productRepo.GetByID(m.ProductID)
			if err != nil {
				return nil, err
			}
			if p != nil {
				exp.ProductName, exp.ProductCode = p.Name, p.Code
				productNames[m.ProductID] = [2]string{p.Name, p.Code}
			}
		}
		if v, ok := personNames[m.PersonID]; ok {
			exp.PersonName = v
		} else {
			p, err := uc.personRepo.GetByID(m.PersonID)
			if err != nil {
				return nil, err
			}
			if p != nil {
				exp.PersonName = p.Name
				personNames[m.PersonID] = p.Name
			}
		}
		out = append(out, exp)
	}
	return uc.exporter.ExportMovements(out, time.Now())
}
