// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validatorlib.Validate
}

// New creates an Echo-compatible request validator.
func New() echo.Validator {
	return &echoValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
