package report

import (
	"context"
	"time"

	"github.com/oliveiradev/estoque-api/internal/application/dto"
)

// StockReportGenerator renderiza el panel de estoque como PDF.
// Implementado en infrastructure/pdf (Maroto).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, items []dto.StockItemResponse, generatedAt time.Time) ([]byte, error)
}

// MovementExporter serializa el historial de movimientos para auditoría.
// Implementado en infrastructure/xml (etree).
type MovementExporter interface {
	ExportMovements(movements []ExportMovement, generatedAt time.Time) ([]byte, error)
}

// ExportMovement movimiento enriquecido con los datos del producto y la persona
// para que el archivo exportado sea legible sin consultar la API.
type ExportMovement struct {
	dto.MovementResponse
	ProductName string
	ProductCode string
	PersonName  string
}
