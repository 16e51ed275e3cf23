// Package validation binds incoming request data to typed payloads and
// enforces the declarative constraints on their fields.
//
// Binding covers every declared input source: JSON body, form fields, path
// parameters, query parameters, headers, cookies, and uploaded files.
// Constraints are expressed as `validate` struct tags evaluated by the
// `validator` library; violations are translated into field-level errors
// the client can act on. Either every field binds and validates, or the
// handler never runs.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mappedev/persondir/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,email"`)
//   - Implement Validate() error that returns validation.Struct(r)
type Validatable interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report wire names (first_name) instead of Go names (FirstName) so
	// field errors match what the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "param", "header", "cookie", "file"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// Struct validates v against its `validate` tags using the shared
// validator instance.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind populates the payload from path params, query params, and the
//     JSON or form body.
//  2. BindHeaders populates fields carrying `header` tags.
//  3. Cookie and uploaded-file fields (`cookie` / `file` tags) are bound
//     by reflection; Echo's default binder covers neither source.
//  4. payload.Validate() applies the constraint tags.
//
// Any failure, including a value that cannot be coerced to the declared
// type, returns a 422 *errs.HTTPError. The payload must be a pointer so
// binding can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewValidationError(bindErrorMessage(err), nil)
	}

	if err := (&echo.DefaultBinder{}).BindHeaders(c, payload); err != nil {
		return errs.NewValidationError(bindErrorMessage(err), nil)
	}

	if err := bindCookies(c, payload); err != nil {
		return err
	}

	if err := bindFiles(c, payload); err != nil {
		return err
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewValidationError(msg, fieldErrors)
	}

	return nil
}

// bindErrorMessage extracts the human-readable part of an Echo bind error.
// Echo wraps coercion failures in *echo.HTTPError with the detail in
// Message; anything else is reported as-is.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
		return fmt.Sprintf("%v", echoErr.Message)
	}
	return err.Error()
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Validate() returned something other than tag violations; surface
		// it as a single unnamed field error.
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, err := range validationErrors {
		field := err.Field()
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means minimum length for strings, minimum value for numbers.
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

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", err.Param())

		case "gte":
			msg = fmt.Sprintf("must be at least %s", err.Param())

		case "lte":
			msg = fmt.Sprintf("must not exceed %s", err.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "url":
			msg = "must be a valid URL"

		case "credit_card":
			msg = "must be a valid payment card number"

		default:
			// The field name lives in the Field key; repeat only the tag here.
			if err.Param() != "" {
				msg = fmt.Sprintf("failed on %s:%s", err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("failed on %s", err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
