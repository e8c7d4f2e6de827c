// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	domainerrors "talenthub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a shared validate instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Struct tag failures surface as the
// standard validation error so the error handler renders a 400 envelope.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
