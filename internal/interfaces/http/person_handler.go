package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/application/usecase"
	appvalidator "github.com/oliveiradev/estoque-api/pkg/validator"
)

// PersonHandler maneja las peticiones HTTP para personas (protegido).
type PersonHandler struct {
	uc *usecase.PersonUseCase
	v  *appvalidator.Validator
}

// NewPersonHandler construye el handler.
func NewPersonHandler(uc *usecase.PersonUseCase, v *appvalidator.Validator) *PersonHandler {
	return &PersonHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Crear persona
// @Tags         pessoas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePersonRequest  true  "Datos de la persona"
// @Success      201   {object}  dto.PersonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pessoas [post]
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.v.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener persona por ID
// @Tags         pessoas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la persona"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pessoas/{id} [get]
func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar personas
// @Tags         pessoas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo por página (1-100)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.PersonListResponse
// @Router       /api/pessoas [get]
func (h *PersonHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar persona
// @Tags         pessoas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la persona"
// @Param        body  body  dto.UpdatePersonRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pessoas/{id} [put]
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.v.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar persona
// @Tags         pessoas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la persona"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pessoas/{id} [delete]
func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
