package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/schema"
	"github.com/mappedev/persondir/internal/server"
	"github.com/mappedev/persondir/internal/service"
	"github.com/mappedev/persondir/internal/validation"
)

// DefaultPersonName is the name used by the list operation when the name
// query parameter is omitted.
const DefaultPersonName = "Anonymous"

// CreatePersonRequest carries the inbound person record as the JSON body.
type CreatePersonRequest struct {
	schema.Person
}

func (r *CreatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// GetPersonsRequest carries the list operation's query parameters.
//
// Age is a pointer so that zero is accepted: `required` rejects a nil
// pointer (parameter absent) while gte=0 bounds the supplied value. Only
// the lower bound is declared; the query deliberately has no upper bound
// even though the body record caps age at 115.
type GetPersonsRequest struct {
	Name *string `query:"name" validate:"omitempty,min=1,max=50"`
	Age  *int    `query:"age" validate:"required,gte=0"`
}

func (r *GetPersonsRequest) Validate() error {
	return validation.Struct(r)
}

// GetPersonRequest carries the person identifier path parameter.
type GetPersonRequest struct {
	PersonID int `param:"person_id" validate:"required,gte=1"`
}

func (r *GetPersonRequest) Validate() error {
	return validation.Struct(r)
}

// UpdatePersonRequest carries the identifier path parameter plus two body
// records, encoded as {"person": {...}, "location": {...}}.
type UpdatePersonRequest struct {
	PersonID int             `param:"person_id" validate:"required,gte=1"`
	Person   schema.Person   `json:"person" validate:"required"`
	Location schema.Location `json:"location" validate:"required"`
}

func (r *UpdatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// PersonHandler serves the person directory operations.
type PersonHandler struct {
	Handler
	persons *service.PersonService
}

// NewPersonHandler constructs a PersonHandler.
func NewPersonHandler(s *server.Server, persons *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler: NewHandler(s),
		persons: persons,
	}
}

// Create registers a person and returns its public projection.
// The password is present in the bound record but absent from the
// PersonOut response schema.
func (h *PersonHandler) Create(c echo.Context, req *CreatePersonRequest) (schema.PersonOut, error) {
	return h.persons.Create(req.Person), nil
}

// List returns a single-entry mapping from the queried name to the age.
func (h *PersonHandler) List(c echo.Context, req *GetPersonsRequest) (map[string]int, error) {
	name := DefaultPersonName
	if req.Name != nil {
		name = *req.Name
	}

	return h.persons.List(name, *req.Age), nil
}

// Get checks whether the identifier is in the registry.
func (h *PersonHandler) Get(c echo.Context, req *GetPersonRequest) (map[string]string, error) {
	return h.persons.Check(req.PersonID)
}

// Update merges the person and location records into the combined
// response shape.
func (h *PersonHandler) Update(c echo.Context, req *UpdatePersonRequest) (schema.PersonLocationOut, error) {
	return h.persons.Update(req.PersonID, req.Person, req.Location), nil
}
