package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator valida structs de entrada (DTOs) según sus tags `validate`.
type Validator struct {
	v *validator.Validate
}

// New construye el validador por defecto.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate valida el struct; retorna nil si pasa todas las reglas.
func (v *Validator) Validate(s any) error {
	return v.v.Struct(s)
}

// Message convierte un error de validación en un mensaje legible por campo.
// Para errores que no vienen del validador devuelve el texto tal cual.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if ok := AsValidationErrors(err, &verrs); !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fieldMessage(fe)))
	}
	return strings.Join(parts, "; ")
}

// AsValidationErrors extrae ValidationErrors de un error si corresponde.
func AsValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "uuid":
		return "debe ser un UUID válido"
	case "min":
		return fmt.Sprintf("debe tener al menos %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de [%s]", fe.Param())
	default:
		return "es inválido"
	}
}
