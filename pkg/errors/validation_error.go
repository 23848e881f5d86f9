package pkgerrors

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

type FieldError struct {
	Name   string
	Reason string
}

// ValidationError aggregates per-field failures into one error value.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "Validation error"
	}

	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s %s", err.Name, err.Reason))
	}
	return fmt.Sprintf("Validation error: %s", strings.Join(msgs, ", "))
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, err := range e.Errors {
		errs = append(errs, fmt.Errorf("%s: %s", err.Name, err.Reason))
	}
	return errs
}

// NewValidationErrorFromOzzo flattens ozzo's nested field errors.
func NewValidationErrorFromOzzo(errs validation.Errors) *ValidationError {
	ve := &ValidationError{
		Errors: make([]FieldError, 0, len(errs)),
	}

	if errs == nil {
		return ve
	}

	ve.parseValidationErrors(errs)
	return ve
}

func (ve *ValidationError) parseValidationErrors(errs validation.Errors) {
	for field, fieldErr := range errs {
		var validationErrs validation.Errors
		switch {
		case errors.As(fieldErr, &validationErrs):
			ve.parseValidationErrors(validationErrs)
		default:
			ve.Errors = append(ve.Errors, FieldError{
				Name:   field,
				Reason: fieldErr.Error(),
			})
		}
	}
}
