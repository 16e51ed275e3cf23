package validation

import (
	"fmt"
	"mime/multipart"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/errs"
)

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

// bindCookies populates struct fields carrying a `cookie:"name"` tag from
// the request's cookies. Supported field types are string and *string;
// a missing cookie leaves the field at its zero value so optional cookies
// stay nil and required ones fail validation.
func bindCookies(c echo.Context, payload any) error {
	rv := reflect.ValueOf(payload)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errs.NewInternalServerError()
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errs.NewInternalServerError()
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		name, skip := fieldTagName(rt.Field(i), "cookie")
		if skip || !field.CanSet() {
			continue
		}

		cookie, err := c.Cookie(name)
		if err != nil {
			continue // not present
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(cookie.Value)
		case reflect.Pointer:
			if field.Type().Elem().Kind() == reflect.String {
				value := cookie.Value
				field.Set(reflect.ValueOf(&value))
			}
		default:
			return errs.NewValidationError(
				fmt.Sprintf("unsupported type for cookie field %s", name), nil)
		}
	}

	return nil
}

// bindFiles populates struct fields carrying a `file:"name"` tag from the
// request's multipart form. Supported field types are *multipart.FileHeader
// and []*multipart.FileHeader. A missing file, or a request that is not
// multipart at all, leaves the field nil; the `required` constraint then
// rejects it with a field-level error instead of a transport error.
func bindFiles(c echo.Context, payload any) error {
	rv := reflect.ValueOf(payload)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errs.NewInternalServerError()
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errs.NewInternalServerError()
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		name, skip := fieldTagName(rt.Field(i), "file")
		if skip || !field.CanSet() {
			continue
		}

		switch {
		case field.Type() == fileHeaderType:
			file, err := c.FormFile(name)
			if err != nil {
				continue // not present or not a multipart request
			}
			field.Set(reflect.ValueOf(file))

		case field.Kind() == reflect.Slice && field.Type().Elem() == fileHeaderType:
			form, err := c.MultipartForm()
			if err != nil {
				continue
			}
			files := form.File[name]
			if len(files) == 0 {
				continue
			}
			slice := reflect.MakeSlice(field.Type(), len(files), len(files))
			for j, f := range files {
				slice.Index(j).Set(reflect.ValueOf(f))
			}
			field.Set(slice)

		default:
			return errs.NewValidationError(
				fmt.Sprintf("unsupported type for file field %s", name), nil)
		}
	}

	return nil
}

// fieldTagName returns the binding name declared by the given tag, and
// whether the field should be skipped (no tag, or tag "-").
func fieldTagName(field reflect.StructField, tag string) (string, bool) {
	value := field.Tag.Get(tag)
	if value == "" || value == "-" {
		return "", true
	}
	if idx := strings.Index(value, ","); idx != -1 {
		value = value[:idx]
	}
	if value == "" {
		return "", true
	}
	return value, false
}
