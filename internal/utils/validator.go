// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FormatValidationErrors flattens validator errors into a response-friendly
// shape. Non-validator errors produce a single generic entry.
func FormatValidationErrors(err error) []ValidationError {
	var out []ValidationError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "", Tag: "", Message: err.Error()}}
	}

	for _, fieldErr := range validationErrors {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fieldErr.Field()),
			Tag:     fieldErr.Tag(),
			Message: fieldErr.Error(),
		})
	}

	return out
}
