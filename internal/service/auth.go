package service

import (
	"github.com/mappedev/persondir/internal/schema"
)

// AuthService handles the login operation.
type AuthService struct{}

// NewAuthService constructs an AuthService.
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login accepts an already-validated username and password and returns the
// login response. The password is discarded here; it never appears in any
// response schema.
func (s *AuthService) Login(username, password string) schema.LoginOut {
	_ = password
	return schema.LoginOutFrom(username)
}
