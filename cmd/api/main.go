// Command api runs the student REST API server.
//
// Startup sequence:
//  1. Load configuration from the environment
//  2. Initialise the logger service (zerolog, optional New Relic agent)
//  3. Run pending database migrations
//  4. Build the application container (db pool, repositories, services,
//     handlers, middlewares, router)
//  5. Start the HTTP server in a goroutine
//  6. Block until SIGINT/SIGTERM, then shut down gracefully
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jcilacad/student-rest-api/internal/config"
	"github.com/jcilacad/student-rest-api/internal/database"
	"github.com/jcilacad/student-rest-api/internal/handler"
	"github.com/jcilacad/student-rest-api/internal/logger"
	"github.com/jcilacad/student-rest-api/internal/middleware"
	"github.com/jcilacad/student-rest-api/internal/repository"
	"github.com/jcilacad/student-rest-api/internal/router"
	"github.com/jcilacad/student-rest-api/internal/server"
	"github.com/jcilacad/student-rest-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; stderr is all we have.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialise logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := loggerService.Logger()

	log.Info().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Primary.Env).
		Msg("starting student-rest-api")

	if err := database.Migrate(context.Background(), log, cfg); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise server")
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise services")
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.NewRouter(handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	loggerService.Shutdown(5 * time.Second)

	log.Info().Msg("server stopped")
}
