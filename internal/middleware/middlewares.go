package middleware

import (
	"github.com/mappedev/persondir/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server, so routing/setup code receives one
// wired object instead of constructing middleware piecemeal.
type Middlewares struct {
	// Global holds middleware applied to every route: CORS, request
	// logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger
	// (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components using the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
