// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps a validator.Validate instance.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator echo uses for c.Validate calls.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
