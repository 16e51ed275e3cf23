package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/schema"
	"github.com/mappedev/persondir/internal/server"
	"github.com/mappedev/persondir/internal/service"
	"github.com/mappedev/persondir/internal/validation"
)

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Username string `form:"username" validate:"required,min=1,max=20"`
	Password string `form:"password" validate:"required,min=8"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// AuthHandler serves the login operation.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// Login validates the form credentials and returns the login response.
// The password never appears in the response schema.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (schema.LoginOut, error) {
	return h.auth.Login(req.Username, req.Password), nil
}
