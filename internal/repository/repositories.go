package repository

import (
	"github.com/mappedev/persondir/internal/server"
)

// Repositories is a container for all repository instances, so services
// receive one wired object instead of individual repositories.
type Repositories struct {
	Persons *PersonRepository
}

// NewRepositories constructs the repository container.
//
// The server container is accepted to preserve the dependency-injection
// shape; the person registry itself needs no shared resources.
func NewRepositories(s *server.Server) *Repositories {
	_ = s
	return &Repositories{
		Persons: NewPersonRepository(),
	}
}
