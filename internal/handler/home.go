package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/server"
)

// EmptyRequest is the payload for operations that take no input.
type EmptyRequest struct{}

// Validate always succeeds; there is nothing to check.
func (r *EmptyRequest) Validate() error {
	return nil
}

// HomeHandler serves the root endpoint.
type HomeHandler struct {
	Handler
}

// NewHomeHandler constructs a HomeHandler.
func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

// Home returns the constant greeting mapping.
func (h *HomeHandler) Home(c echo.Context, req *EmptyRequest) (map[string]string, error) {
	return map[string]string{"Hello": "World"}, nil
}
