package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field identifiers of the booking form.
const (
	FieldName   = "name"
	FieldPhone  = "phone"
	FieldReason = "reason"
	FieldDate   = "date"
	FieldTime   = "time"
)

// Regex patterns
var (
	// Digits, whitespace, plus sign, hyphen and parentheses only
	phoneRegex = regexp.MustCompile(`^[+\d\s\-()]+$`)
)

// fieldTags maps each form field to the validator tag that decides it.
var fieldTags = map[string]string{
	FieldName:   "appt_name",
	FieldPhone:  "appt_phone",
	FieldReason: "appt_reason",
	FieldDate:   "required",
	FieldTime:   "required",
}

var fieldValidate = New()

// New returns a validator with the booking rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators and aliases to the validator instance.
// min/max count runes, not bytes and not UTF-16 code units: an astral
// character such as an emoji counts once here but twice in a browser.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("phone_chars", PhoneChars)
	v.RegisterAlias("appt_name", "min=3")
	v.RegisterAlias("appt_phone", "phone_chars,min=10")
	v.RegisterAlias("appt_reason", "min=10")
}

// PhoneChars validates that the whole value is made of phone characters.
// An empty value fails; phone is always required on the form.
func PhoneChars(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// ValidateField reports whether value satisfies the rule of the given field.
// Unknown fields have no rule and are always valid.
func ValidateField(field, value string) bool {
	tag, ok := fieldTags[field]
	if !ok {
		return true
	}
	return fieldValidate.Var(value, tag) == nil
}

// IsBlank reports whether value has no visible content. Blank fields are
// still invalid for submission but carry no visual marker.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
