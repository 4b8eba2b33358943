package web

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// BindingError renders a request binding failure as a response message.
func BindingError(err error) string {
	var ve validator.ValidationErrors

	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return "invalid request"
}
