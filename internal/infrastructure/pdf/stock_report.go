// Package pdf implementa la generación del reporte imprimible del panel de
// estoque (producto, cantidad en mano, mínimo y estado) usando Maroto v2.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/application/report"
	domstock "github.com/oliveiradev/estoque-api/internal/domain/stock"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ report.StockReportGenerator = (*StockReportGenerator)(nil)

// StockReportGenerator implementa report.StockReportGenerator usando Maroto v2.
type StockReportGenerator struct{}

// NewStockReportGenerator construye el generador.
func NewStockReportGenerator() *StockReportGenerator { return &StockReportGenerator{} }

// GenerateStockReport genera el PDF del panel y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(
	_ context.Context,
	items []dto.StockItemResponse,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Painel de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Painel de Estoque", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Size: 9, Style: fontstyle.Bold}))
	}
	return row.New(7).Add(
		header(2, "Código"),
		header(4, "Produto"),
		header(1, "Un."),
		header(2, "Quantidade"),
		header(2, "Mínimo"),
		header(1, "Status"),
	)
}

func itemRow(it dto.StockItemResponse) core.Row {
	statusColor := colorGray
	if it.Status != domstock.StatusNormal {
		statusColor = colorAlert
	}
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(6).Add(
		cell(2, it.Code),
		cell(4, it.Name),
		cell(1, it.Unit),
		cell(2, it.Quantity.String()),
		cell(2, it.MinStock.String()),
		col.New(1).Add(text.New(it.Status, props.Text{Size: 8, Color: statusColor})),
	)
}

func summaryRow(items []dto.StockItemResponse) core.Row {
	low, out := 0, 0
	for _, it := range items {
		switch it.Status {
		case domstock.StatusLow:
			low++
		case domstock.StatusOut:
			out++
		}
	}
	summary := fmt.Sprintf("%d produtos — %d com estoque baixo, %d sem estoque", len(items), low, out)
	return row.New(8).Add(
		col.New(12).Add(text.New(summary, props.Text{Size: 8, Color: colorGray})),
	)
}
