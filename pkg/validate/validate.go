package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Struct validates the `validate` tags on a DTO.
func Struct(s any) error {
	return v.Struct(s)
}
