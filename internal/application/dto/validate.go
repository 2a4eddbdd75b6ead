package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los mensajes usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate aplica las etiquetas validate del request. Errores envueltos en domain.ErrInvalidInput.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(fieldErrs[0]))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s debe ser al menos %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s admite máximo %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s debe ser como máximo %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor a %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s no es un email válido", fe.Field())
	default:
		return fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag())
	}
}

// ValidateMoney rechaza montos con más decimales que las columnas NUMERIC(12,2).
func ValidateMoney(field string, amount decimal.Decimal) error {
	if !entity.IsMoney(amount) {
		return fmt.Errorf("%w: %s admite máximo %d decimales", domain.ErrInvalidInput, field, entity.MoneyScale)
	}
	return nil
}
