package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/server"
	"github.com/mappedev/persondir/internal/validation"
)

// ContactRequest carries the contact form fields plus two optional
// ambient inputs: the User-Agent header and the ads cookie.
type ContactRequest struct {
	FirstName string  `form:"first_name" validate:"required,min=1,max=20"`
	LastName  string  `form:"last_name" validate:"required,min=1,max=20"`
	Email     string  `form:"email" validate:"required,email"`
	Message   string  `form:"message" validate:"required,min=20"`
	UserAgent *string `header:"User-Agent"`
	Ads       *string `cookie:"ads"`
}

func (r *ContactRequest) Validate() error {
	return validation.Struct(r)
}

// ContactHandler serves the contact operation.
type ContactHandler struct {
	Handler
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(s *server.Server) *ContactHandler {
	return &ContactHandler{
		Handler: NewHandler(s),
	}
}

// Contact accepts the form and echoes the caller's User-Agent value
// verbatim, or JSON null when the header was not supplied.
func (h *ContactHandler) Contact(c echo.Context, req *ContactRequest) (*string, error) {
	return req.UserAgent, nil
}
