package service

import (
	"strconv"

	"github.com/mappedev/persondir/internal/errs"
	"github.com/mappedev/persondir/internal/repository"
	"github.com/mappedev/persondir/internal/schema"
)

// PersonNotFoundMessage is the fixed message returned when an identifier
// is not in the registry.
const PersonNotFoundMessage = "This person does not exist"

// PersonExistsMessage is the fixed value returned for identifiers that are
// in the registry.
const PersonExistsMessage = "It exists!"

// PersonService implements the person directory operations over the fixed
// identifier registry.
type PersonService struct {
	persons *repository.PersonRepository
}

// NewPersonService constructs a PersonService.
func NewPersonService(persons *repository.PersonRepository) *PersonService {
	return &PersonService{persons: persons}
}

// Create registers a person and returns its public projection. There is no
// persistence; the record is echoed back through the PersonOut schema,
// which drops the password structurally.
func (s *PersonService) Create(person schema.Person) schema.PersonOut {
	return schema.PersonOutFrom(person)
}

// List answers the name/age query with a single-entry mapping from the
// (possibly defaulted) name to the age.
func (s *PersonService) List(name string, age int) map[string]int {
	return map[string]int{name: age}
}

// Check verifies that personID is in the registry. On a miss it returns a
// 404 error with the fixed message; on a hit, a mapping from the
// identifier to the fixed exists marker. JSON object keys are strings, so
// the identifier is rendered in decimal.
func (s *PersonService) Check(personID int) (map[string]string, error) {
	if !s.persons.Exists(personID) {
		return nil, errs.NewNotFoundError(PersonNotFoundMessage)
	}

	return map[string]string{
		strconv.Itoa(personID): PersonExistsMessage,
	}, nil
}

// Update merges the person's public fields with the location's fields into
// the combined response shape. The identifier is accepted and validated
// but not looked up; the directory stores nothing, so any well-formed id
// is updatable.
func (s *PersonService) Update(personID int, person schema.Person, location schema.Location) schema.PersonLocationOut {
	_ = personID
	return schema.PersonLocationOutFrom(person, location)
}
