package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var boundaryValidator = validator.New(validator.WithRequiredStructEnabled())

// validateRecords checks provider records before they reach the domain.
// All violations are reported together, prefixed with the record index.
func validateRecords[T any](ctx context.Context, kind string, items []T) error {
	var problems []string
	for i := range items {
		if err := boundaryValidator.StructCtx(ctx, items[i]); err != nil {
			problems = append(problems, fmt.Sprintf("%s[%d]: %s", kind, i, describeValidation(err)))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}

func describeValidation(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if fieldErr.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param(), fieldErr.Value()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return strings.Join(parts, ", ")
}
