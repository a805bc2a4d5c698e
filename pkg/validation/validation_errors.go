package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly Spanish labels
var FieldLabels = map[string]string{
	"Name":   "Nombre",
	"Phone":  "Teléfono",
	"Reason": "Motivo de consulta",
	"Date":   "Fecha",
	"Time":   "Hora",
}

// FieldError is a single failed rule, keyed by the form field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   strings.ToLower(e.StructField()),
			Message: formatSingleError(e),
		})
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Campo obligatorio", label)

	case "appt_name":
		return fmt.Sprintf("%s: Mínimo 3 caracteres", label)

	case "appt_phone":
		if e.ActualTag() == "phone_chars" {
			return fmt.Sprintf("%s: Solo números, espacios, +, - y paréntesis", label)
		}
		return fmt.Sprintf("%s: Mínimo 10 caracteres", label)

	case "appt_reason":
		return fmt.Sprintf("%s: Mínimo 10 caracteres", label)

	default:
		return fmt.Sprintf("%s: Valor inválido (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}

// ScheduleError describes a date or time value the pickers would never offer,
// e.g. a date past the booking window or a time off the slot grid.
func ScheduleError(field string) FieldError {
	switch field {
	case FieldDate:
		return FieldError{Field: field, Message: fmt.Sprintf("%s: Fuera del rango de fechas disponibles", getFieldLabel("Date"))}
	case FieldTime:
		return FieldError{Field: field, Message: fmt.Sprintf("%s: Fuera del horario de atención", getFieldLabel("Time"))}
	}
	return FieldError{Field: field, Message: fmt.Sprintf("%s: Valor inválido", field)}
}
