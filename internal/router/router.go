// Package router initializes the HTTP router (using Echo).
//
// It registers the global middlewares and maps every directory operation
// to its handler, method, path, and success status.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/handler"
	"github.com/mappedev/persondir/internal/middleware"
)

// New builds the Echo instance: global middleware first (ordering matters,
// the request ID must exist before the context logger is built), then the
// API and system routes.
func New(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())

	registerAPIRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
