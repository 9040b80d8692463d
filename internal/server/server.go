package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/information-sharing-networks/journey/internal/config"
	"github.com/information-sharing-networks/journey/internal/database"
	"github.com/information-sharing-networks/journey/internal/journal"
	journalhandlers "github.com/information-sharing-networks/journey/internal/journal/handlers"
	"github.com/information-sharing-networks/journey/internal/logger"
	"github.com/information-sharing-networks/journey/internal/repository"
	"github.com/information-sharing-networks/journey/internal/server/handlers"
	appmiddleware "github.com/information-sharing-networks/journey/internal/server/middleware"
	"github.com/information-sharing-networks/journey/internal/version"
	"github.com/jackc/pgx/v5/pgxpool"

	// registers the OpenAPI document served at /swagger/doc.json
	_ "github.com/information-sharing-networks/journey/internal/docs"
)

type Server struct {
	pool    *pgxpool.Pool
	queries *database.Queries
	config  *config.ServerEnvironment
	logger  *slog.Logger
	router  *chi.Mux

	journalEntries *journalhandlers.JournalEntryHandler
}

func NewServer(
	pool *pgxpool.Pool,
	cfg *config.ServerEnvironment,
	logger *slog.Logger,
) *Server {
	repo := repository.NewPostgres(pool)

	server := &Server{
		pool:    pool,
		queries: database.New(pool),
		config:  cfg,
		logger:  logger,
		router:  chi.NewRouter(),
		journalEntries: journalhandlers.NewJournalEntryHandler(
			journal.NewService(repo),
			journal.NewQueryService(repo),
			cfg.ApplicationName,
		),
	}

	server.setupMiddleware()
	server.registerRoutes()

	return server
}

// Router returns the configured routes, e.g for use with httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.config.RequestTimeout))
	s.router.Use(appmiddleware.CORS(s.config.AllowedOrigins, s.config.ApplicationName))
	s.router.Use(appmiddleware.SecurityHeaders(s.config.Environment))
	s.router.Use(appmiddleware.RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst))
}

func (s *Server) registerRoutes() {
	s.router.Route("/health", func(r chi.Router) {
		r.Get("/live", handlers.HandleHealth)
		r.Get("/ready", handlers.HandleReadiness(s.queries))
	})
	s.router.Get("/version", handlers.HandleVersion(version.Get()))
	s.router.Get("/swagger/doc.json", handlers.HandleAPIDoc)

	s.router.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequestSizeLimit(s.config.MaxRequestSize))
		r.Mount(journalhandlers.ResourcePath, s.journalEntries.Routes())
	})
}

func (s *Server) Start(ctx context.Context) error {
	serverAddr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	httpServer := &http.Server{
		Addr:         serverAddr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("service listening",
			slog.String("environment", s.config.Environment),
			slog.String("address", serverAddr),
			slog.String("version", version.Get().Version))

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.config.ServerShutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("shutting down HTTP server")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		s.logger.Warn("HTTP server shutdown error",
			slog.String("error", err.Error()))
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

func (s *Server) DatabaseShutdown() {
	if s.pool != nil {
		s.pool.Close()
		s.logger.Info("database connection closed")
	}
}
