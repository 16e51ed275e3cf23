package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/handler"
)

// registerSystemRoutes registers endpoints that are not directory
// operations: health status, the docs UI, and the static assets backing it.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by load balancers/monitors).
	e.GET("/status", h.Health.CheckHealth)

	// Serve ./static at /static/*, which holds openapi.json and the docs
	// UI assets.
	e.Static("/static", "static")

	// Docs UI endpoint (serves openapi.html).
	e.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
