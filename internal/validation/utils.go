package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deppfellow/questions/internal/errs"
)

// validate is the shared validator instance. validator caches struct
// metadata internally, so one instance serves the whole process.
var validate = validator.New()

// Check validates v against its struct tags.
//
// It returns nil when every rule passes, and *errs.ValidationError with
// field-level details otherwise. Repositories call this before building an
// INSERT so obviously bad rows never reach the database.
func Check(v any) error {
	if err := validate.Struct(v); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.NewValidationError(msg, fieldErrors)
	}
	return nil
}

// extractValidationError converts validator.ValidationErrors into
// user-friendly field errors.
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error(), nil
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means minimum length for strings, minimum value otherwise.
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
