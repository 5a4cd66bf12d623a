// Package server wires the record service: router, middleware, handlers and
// the storage layer, plus graceful shutdown. It exists so the client has a
// real endpoint to run against; the client itself never depends on it.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/siddharthpandey07/UserManage/internal/logging"
	"github.com/siddharthpandey07/UserManage/internal/server/handler"
	"github.com/siddharthpandey07/UserManage/internal/server/middleware"
	sqliteRepo "github.com/siddharthpandey07/UserManage/internal/server/repository/sqlite"
	"github.com/siddharthpandey07/UserManage/internal/server/service"
)

type Config struct {
	Addr   string
	DBPath string
	// Seed loads the built-in fixture users into an empty database on start.
	Seed bool
}

type Server struct {
	router chi.Router
	config Config
	log    logging.Logger
	db     *sqliteRepo.DB
}

// New assembles the dependency chain: sqlite repository → user service →
// handler → routes.
func New(cfg Config, log logging.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: NewRouter(db, log),
		config: cfg,
		log:    log,
		db:     db,
	}

	if cfg.Seed {
		if err := seed(context.Background(), db); err != nil {
			db.Close()
			return nil, fmt.Errorf("seeding database: %w", err)
		}
	}

	return s, nil
}

// NewRouter builds the HTTP surface on top of an open repository. Split out
// of New so tests can mount it on an httptest server.
func NewRouter(db *sqliteRepo.DB, log logging.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(log))

	userService := service.NewUserService(db, log)
	handler.NewUserHandler(userService, log).Routes(r)

	return r
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests and
// closes the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info(context.Background(), "server starting",
			"addr", s.config.Addr, "database", s.config.DBPath)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.log.Info(context.Background(), "shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.log.Info(context.Background(), "server stopped")
	}

	return nil
}
