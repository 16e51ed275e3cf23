// The api command runs the person directory HTTP service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mappedev/persondir/internal/config"
	"github.com/mappedev/persondir/internal/handler"
	"github.com/mappedev/persondir/internal/logger"
	"github.com/mappedev/persondir/internal/middleware"
	"github.com/mappedev/persondir/internal/repository"
	"github.com/mappedev/persondir/internal/router"
	"github.com/mappedev/persondir/internal/server"
	"github.com/mappedev/persondir/internal/service"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config failed before the real logger exists; a bare console
		// logger is all we have.
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Observability)

	srv := server.New(cfg, &log)

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(middlewares, handlers)
	srv.SetupHTTPServer(e)

	// Run the server; stop on SIGINT/SIGTERM and drain in-flight requests.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}

	log.Info().Msg("server stopped")
}
