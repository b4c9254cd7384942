// Package xml implementa el export de auditoría del historial de movimientos
// en XML (etree), consumido por sistemas externos de conciliación.
package xml

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/oliveiradev/estoque-api/internal/application/report"
)

var _ report.MovementExporter = (*MovementExporter)(nil)

// MovementExporter serializa movimientos con etree.
type MovementExporter struct{}

// NewMovementExporter construye el exportador.
func NewMovementExporter() *MovementExporter { return &MovementExporter{} }

// ExportMovements genera el documento XML del historial, en el mismo orden
// en que se reciben los movimientos (fecha ascendente).
func (e *MovementExporter) ExportMovements(movements []report.ExportMovement, generatedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Movimentacoes")
	root.CreateAttr("geradoEm", generatedAt.Format(time.RFC3339))
	root.CreateAttr("total", strconv.Itoa(len(movements)))

	for _, m := range movements {
		mov := root.CreateElement("Movimento")
		mov.CreateAttr("id", m.ID)
		mov.CreateElement("Tipo").SetText(m.Type)
		mov.CreateElement("Quantidade").SetText(m.Quantity.String())
		mov.CreateElement("Data").SetText(m.Date.Format(time.RFC3339))

		produto := mov.CreateElement("Produto")
		produto.CreateAttr("id", m.ProductID)
		if m.ProductCode != "" {
			produto.CreateElement("Codigo").SetText(m.ProductCode)
		}
		if m.ProductName != "" {
			produto.CreateElement("Nome").SetText(m.ProductName)
		}

		pessoa := mov.CreateElement("Pessoa")
		pessoa.CreateAttr("id", m.PersonID)
		if m.PersonName != "" {
			pessoa.CreateElement("Nome").SetText(m.PersonName)
		}

		if m.Notes != "" {
			mov.CreateElement("Observacao").SetText(m.Notes)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar XML: %w", err)
	}
	return out, nil
}
