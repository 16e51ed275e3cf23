package service

import (
	"github.com/mappedev/persondir/internal/repository"
	"github.com/mappedev/persondir/internal/server"
)

// Services is a container that groups all service instances.
type Services struct {
	Persons *PersonService
	Auth    *AuthService
}

// NewServices constructs the service container from the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	_ = s
	return &Services{
		Persons: NewPersonService(repos.Persons),
		Auth:    NewAuthService(),
	}
}
