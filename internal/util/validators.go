package util

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the project's custom tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("notblank", ValidateNotBlank)
	return v
}

// ValidateNotBlank rejects strings that are empty after trimming whitespace.
func ValidateNotBlank(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}
