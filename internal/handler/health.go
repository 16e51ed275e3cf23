package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mappedev/persondir/internal/middleware"
	"github.com/mappedev/persondir/internal/server"
)

// HealthHandler exposes a system endpoint that load balancers and uptime
// monitors can use to verify the service is alive. The service has no
// external dependencies, so there are no sub-checks: if the process
// answers, it is healthy.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns the service status, current UTC timestamp, and the
// configured environment.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	logger.Debug().Msg("health check")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	})
}
