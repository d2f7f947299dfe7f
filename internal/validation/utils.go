package validation

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError flattens validator errors into field/message pairs.
// Non-validator errors (malformed JSON) come back as a single body entry.
func FormatValidationError(err error) []Error {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		if err == nil {
			return nil
		}
		return []Error{{Field: "body", Message: err.Error()}}
	}

	errors := make([]Error, 0, len(validationErrors))
	for _, e := range validationErrors {
		errors = append(errors, Error{
			Field:   e.Field(),
			Message: e.Error(),
		})
	}
	return errors
}

// Error represents a validation error
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
