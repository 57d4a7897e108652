package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks user-correctable input errors. Handlers surface it as
// a 400 with the wrapped message.
var ErrValidation = errors.New("invalid input")

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validateStruct runs the struct tags and folds any failure into
// ErrValidation so callers only need one errors.Is check.
func validateStruct(v *validator.Validate, value any) error {
	if err := v.Struct(value); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	return nil
}
