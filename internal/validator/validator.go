// Package validator wraps go-playground/validator with the message wording
// the record layer and services report to callers.
package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// FieldMessage converts a validator error on a named record field into a
// readable message.
func FieldMessage(field string, err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be blank", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, err.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
