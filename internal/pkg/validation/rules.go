// Package validation holds the custom binding rules used by request DTOs.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagNotBlank rejects whitespace-only strings
const TagNotBlank = "notblank"

// NotBlank rejects strings that are empty after trimming whitespace. Nil
// pointers pass; combine with required when the field is mandatory.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// Register installs every rule on v
func Register(v *validator.Validate) error {
	return v.RegisterValidation(TagNotBlank, NotBlank)
}
