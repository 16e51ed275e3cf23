package repository

// PersonRepository answers existence checks against the fixed registry of
// known person identifiers. The registry is never mutated; every method is
// safe for concurrent use.
type PersonRepository struct {
	persons []int
}

// NewPersonRepository constructs the repository over the fixed registry
// {1, 2, 3, 4, 5}.
func NewPersonRepository() *PersonRepository {
	return &PersonRepository{
		persons: []int{1, 2, 3, 4, 5},
	}
}

// Exists reports whether personID is in the registry.
func (r *PersonRepository) Exists(personID int) bool {
	for _, id := range r.persons {
		if id == personID {
			return true
		}
	}
	return false
}

// IDs returns a copy of the registry contents, in order.
func (r *PersonRepository) IDs() []int {
	ids := make([]int, len(r.persons))
	copy(ids, r.persons)
	return ids
}
