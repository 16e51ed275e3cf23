package validation_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mappedev/persondir/internal/errs"
	"github.com/mappedev/persondir/internal/validation"
)

type personPayload struct {
	FirstName  string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName   string  `json:"last_name" validate:"required,min=1,max=50"`
	Age        int     `json:"age" validate:"required,gt=0,lte=115"`
	Email      string  `json:"email" validate:"required,email"`
	HairColor  *string `json:"hair_color" validate:"omitempty,oneof=white brown black blonde red"`
	WebsiteURL *string `json:"website_url" validate:"omitempty,url"`
	CreditCard *string `json:"credit_card" validate:"omitempty,credit_card"`
	Password   string  `json:"password" validate:"required,min=8"`
}

func (p *personPayload) Validate() error {
	return validation.Struct(p)
}

func newJSONContext(t *testing.T, method, target, body string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func fieldErrorsOf(t *testing.T, err error) []errs.FieldError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	return httpErr.Errors
}

func TestBindAndValidate_ValidBody(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, "/persons", `{
		"first_name": "Mario",
		"last_name": "Peña",
		"age": 26,
		"email": "user@email.com",
		"hair_color": "black",
		"website_url": "https://mappedev.com",
		"credit_card": "5555555555554444",
		"password": "12345678"
	}`)

	payload := &personPayload{}
	require.NoError(t, validation.BindAndValidate(c, payload))

	assert.Equal(t, "Mario", payload.FirstName)
	assert.Equal(t, 26, payload.Age)
	require.NotNil(t, payload.HairColor)
	assert.Equal(t, "black", *payload.HairColor)
}

func TestBindAndValidate_AbsentOptionalsStayNil(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, "/persons",
		`{"first_name":"Mario","last_name":"Peña","age":26,"email":"user@email.com","password":"12345678"}`)

	payload := &personPayload{}
	require.NoError(t, validation.BindAndValidate(c, payload))

	assert.Nil(t, payload.HairColor)
	assert.Nil(t, payload.WebsiteURL)
	assert.Nil(t, payload.CreditCard)
}

func TestBindAndValidate_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing required field",
			body:      `{"last_name":"Peña","age":26,"email":"user@email.com","password":"12345678"}`,
			wantField: "first_name",
			wantMsg:   "is required",
		},
		{
			name:      "string too long",
			body:      `{"first_name":"` + strings.Repeat("a", 51) + `","last_name":"Peña","age":26,"email":"user@email.com","password":"12345678"}`,
			wantField: "first_name",
			wantMsg:   "must not exceed 50 characters",
		},
		{
			name:      "age above bound",
			body:      `{"first_name":"Mario","last_name":"Peña","age":116,"email":"user@email.com","password":"12345678"}`,
			wantField: "age",
			wantMsg:   "must not exceed 115",
		},
		{
			name:      "malformed email",
			body:      `{"first_name":"Mario","last_name":"Peña","age":26,"email":"not-an-email","password":"12345678"}`,
			wantField: "email",
			wantMsg:   "must be a valid email address",
		},
		{
			name:      "enum miss",
			body:      `{"first_name":"Mario","last_name":"Peña","age":26,"email":"user@email.com","hair_color":"green","password":"12345678"}`,
			wantField: "hair_color",
			wantMsg:   "must be one of: white brown black blonde red",
		},
		{
			// A supplied empty string is a present value, not an omission,
			// and an empty string is not in the enumeration.
			name:      "enum empty string",
			body:      `{"first_name":"Mario","last_name":"Peña","age":26,"email":"user@email.com","hair_color":"","password":"12345678"}`,
			wantField: "hair_color",
			wantMsg:   "must be one of: white brown black blonde red",
		},
		{
			name:      "malformed url",
			body:      `{"first_name":"Mario","last_name":"Peña","age":26,"email":"user@email.com","website_url":"not a url","password":"12345678"}`,
			wantField: "website_url",
			wantMsg:   "must be a valid URL",
		},
		{
			name:      "url empty string",
			body:      `{"first_name":"Mario","last_name":"Peña","age":26,"email":"user@email.com","website_url":"","password":"12345678"}`,
			wantField: "website_url",
			wantMsg:   "must be a valid URL",
		},
		{
			name:      "malformed card number",
			body:      `{"first_name":"Mario","last_name":"Peña","age":26,"email":"user@email.com","credit_card":"1234","password":"12345678"}`,
			wantField: "credit_card",
			wantMsg:   "must be a valid payment card number",
		},
		{
			name:      "password too short",
			body:      `{"first_name":"Mario","last_name":"Peña","age":26,"email":"user@email.com","password":"1234"}`,
			wantField: "password",
			wantMsg:   "must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newJSONContext(t, http.MethodPost, "/persons", tt.body)

			err := validation.BindAndValidate(c, &personPayload{})
			require.Error(t, err)

			fieldErrors := fieldErrorsOf(t, err)
			require.NotEmpty(t, fieldErrors)
			assert.Equal(t, tt.wantField, fieldErrors[0].Field)
			assert.Equal(t, tt.wantMsg, fieldErrors[0].Error)
		})
	}
}

func TestBindAndValidate_UncoercibleTypeIsValidationError(t *testing.T) {
	c := newJSONContext(t, http.MethodPost, "/persons",
		`{"first_name":"Mario","last_name":"Peña","age":"twenty-six","email":"user@email.com","password":"12345678"}`)

	err := validation.BindAndValidate(c, &personPayload{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
}

type headerCookiePayload struct {
	UserAgent *string `header:"User-Agent"`
	Ads       *string `cookie:"ads"`
}

func (p *headerCookiePayload) Validate() error {
	return validation.Struct(p)
}

func TestBindAndValidate_HeaderAndCookie(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set("User-Agent", "test-agent/1.0")
		req.AddCookie(&http.Cookie{Name: "ads", Value: "tracking-id"})
		c := echo.New().NewContext(req, httptest.NewRecorder())

		payload := &headerCookiePayload{}
		require.NoError(t, validation.BindAndValidate(c, payload))

		require.NotNil(t, payload.UserAgent)
		assert.Equal(t, "test-agent/1.0", *payload.UserAgent)
		require.NotNil(t, payload.Ads)
		assert.Equal(t, "tracking-id", *payload.Ads)
	})

	t.Run("absent stays nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		payload := &headerCookiePayload{}
		require.NoError(t, validation.BindAndValidate(c, payload))

		assert.Nil(t, payload.UserAgent)
		assert.Nil(t, payload.Ads)
	})
}

type uploadPayload struct {
	Image *multipart.FileHeader `file:"image" validate:"required"`
}

func (p *uploadPayload) Validate() error {
	return validation.Struct(p)
}

func multipartBody(t *testing.T, field, filename string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestBindAndValidate_FileUpload(t *testing.T) {
	t.Run("binds file with metadata", func(t *testing.T) {
		body, contentType := multipartBody(t, "image", "photo.png", 2048)
		req := httptest.NewRequest(http.MethodPost, "/post-image", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		payload := &uploadPayload{}
		require.NoError(t, validation.BindAndValidate(c, payload))

		require.NotNil(t, payload.Image)
		assert.Equal(t, "photo.png", payload.Image.Filename)
		assert.Equal(t, int64(2048), payload.Image.Size)
	})

	t.Run("missing file fails required", func(t *testing.T) {
		body, contentType := multipartBody(t, "other", "photo.png", 16)
		req := httptest.NewRequest(http.MethodPost, "/post-image", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := validation.BindAndValidate(c, &uploadPayload{})
		require.Error(t, err)

		fieldErrors := fieldErrorsOf(t, err)
		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "image", fieldErrors[0].Field)
		assert.Equal(t, "is required", fieldErrors[0].Error)
	})

	t.Run("non-multipart request fails required", func(t *testing.T) {
		form := url.Values{"image": {"not-a-file"}}
		req := httptest.NewRequest(http.MethodPost, "/post-image", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := validation.BindAndValidate(c, &uploadPayload{})
		require.Error(t, err)

		fieldErrors := fieldErrorsOf(t, err)
		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "image", fieldErrors[0].Field)
	})
}

type queryPayload struct {
	Name *string `query:"name" validate:"omitempty,min=1,max=50"`
	Age  *int    `query:"age" validate:"required,gte=0"`
}

func (p *queryPayload) Validate() error {
	return validation.Struct(p)
}

func TestBindAndValidate_QueryParameters(t *testing.T) {
	t.Run("zero age is valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/persons?age=0", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		payload := &queryPayload{}
		require.NoError(t, validation.BindAndValidate(c, payload))

		require.NotNil(t, payload.Age)
		assert.Equal(t, 0, *payload.Age)
		assert.Nil(t, payload.Name)
	})

	t.Run("negative age is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/persons?age=-1", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := validation.BindAndValidate(c, &queryPayload{})
		require.Error(t, err)

		fieldErrors := fieldErrorsOf(t, err)
		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "age", fieldErrors[0].Field)
		assert.Equal(t, "must be at least 0", fieldErrors[0].Error)
	})

	t.Run("missing age is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/persons", nil)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := validation.BindAndValidate(c, &queryPayload{})
		require.Error(t, err)

		fieldErrors := fieldErrorsOf(t, err)
		require.Len(t, fieldErrors, 1)
		assert.Equal(t, "age", fieldErrors[0].Field)
		assert.Equal(t, "is required", fieldErrors[0].Error)
	})
}
