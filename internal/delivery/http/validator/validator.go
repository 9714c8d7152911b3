// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"strings"

	domainerrors "blogapi/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator Echo uses for c.Validate calls.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and reports failures as a validation error so
// the error handler answers 422 with the offending fields.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidation.WithDetails(err.Error())
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fieldErr.Field()+" failed on '"+fieldErr.Tag()+"'")
	}

	return domainerrors.ErrValidation.WithDetails(strings.Join(details, "; "))
}
