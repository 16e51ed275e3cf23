package handler

import (
	"github.com/mappedev/persondir/internal/server"
	"github.com/mappedev/persondir/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// receives one wired object instead of many.
type Handlers struct {
	Home    *HomeHandler
	Persons *PersonHandler
	Auth    *AuthHandler
	Contact *ContactHandler
	Files   *FileHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

// NewHandlers constructs the handler container from the application
// container and the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Persons: NewPersonHandler(s, services.Persons),
		Auth:    NewAuthHandler(s, services.Auth),
		Contact: NewContactHandler(s),
		Files:   NewFileHandler(s),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
