package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/application/report"
	"github.com/oliveiradev/estoque-api/internal/application/stock"
	appvalidator "github.com/oliveiradev/estoque-api/pkg/validator"
)

// StockHandler expone el libro de movimientos y el panel de estoque.
type StockHandler struct {
	ledger  *stock.LedgerUseCase
	reports *report.ReportUseCase
	v       *appvalidator.Validator
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *stock.LedgerUseCase, reports *report.ReportUseCase, v *appvalidator.Validator) *StockHandler {
	return &StockHandler{ledger: ledger, reports: reports, v: v}
}

// Panel godoc
// @Summary      Panel de estoque actual
// @Description  Todos los productos con cantidad en mano, mínimo y estado (out/low/normal).
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/estoque/atual [get]
func (h *StockHandler) Panel(c *fiber.Ctx) error {
	items, err := h.ledger.Panel(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetOnHand godoc
// @Summary      Estoque actual de un producto
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/produto/{id} [get]
func (h *StockHandler) GetOnHand(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.ledger.GetOnHand(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de estoque
// @Description  Registra una ENTRADA o SAIDA; la SAIDA nunca puede dejar el stock negativo.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/movimentacoes [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.v.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.ledger.RegisterMovement(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        produto  query  string  false  "filtrar por producto"
// @Param        tipo     query  string  false  "ENTRADA o SAIDA"
// @Param        de       query  string  false  "desde (RFC3339)"
// @Param        ate      query  string  false  "hasta (RFC3339)"
// @Param        limit    query  int     false  "máximo por página (1-100)"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/estoque/movimentacoes [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return respondBadBody(c)
	}
	if err := h.v.Validate(q); err != nil {
		return respondError(c, err)
	}
	q.DefaultPage()
	out, err := h.ledger.ListMovements(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockReport godoc
// @Summary      Reporte PDF del panel de estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/estoque/relatorio [get]
func (h *StockHandler) StockReport(c *fiber.Ctx) error {
	pdfBytes, err := h.reports.StockReportPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("estoque_%s.pdf", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// ExportMovements godoc
// @Summary      Exportar movimientos en XML
// @Tags         estoque
// @Security     Bearer
// @Produce      application/xml
// @Param        produto  query  string  false  "filtrar por producto"
// @Param        tipo     query  string  false  "ENTRADA o SAIDA"
// @Param        de       query  string  false  "desde (RFC3339)"
// @Param        ate      query  string  false  "hasta (RFC3339)"
// @Success      200  {file}  binary
// @Router       /api/estoque/movimentacoes/export.xml [get]
func (h *StockHandler) ExportMovements(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return respondBadBody(c)
	}
	if err := h.v.Validate(q); err != nil {
		return respondError(c, err)
	}
	// Sin DefaultPage: el export es de auditoría y recorre el historial completo
	xmlBytes, err := h.reports.MovementsXML(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("movimentacoes_%s.xml", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(xmlBytes)
}
