// Package validator wraps go-playground/validator with a shared instance and
// readable error messages. Struct fields are validated through their
// `validate` tags, single values through an explicit tag.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned on any rule violation.
var ErrValidationFailed = errors.New("validation failed")

var validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// Example: "'MaxPeers': value '0' does not meet the requirements for the 'min' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func formatError(name string, err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		field := validationErr.Field()
		if field == "" {
			field = name
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, validationErr.Value(), validationErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError("", err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var("peer", addr, "hostname_port").
// name is only used to label the error.
func Var(name string, value any, tag string) error {
	if err := validator.Var(value, tag); err != nil {
		return formatError(name, err)
	}

	return nil
}
