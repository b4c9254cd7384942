package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oliveiradev/estoque-api/internal/application/auth"
	"github.com/oliveiradev/estoque-api/internal/application/dto"
	appvalidator "github.com/oliveiradev/estoque-api/pkg/validator"
)

// AuthHandler expone el login (ruta pública).
type AuthHandler struct {
	uc *auth.AuthUseCase
	v  *appvalidator.Validator
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, v *appvalidator.Validator) *AuthHandler {
	return &AuthHandler{uc: uc, v: v}
}

// Login godoc
// @Summary      Autenticar usuario
// @Description  Valida email y senha; devuelve un JWT Bearer y el usuario.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.v.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
