package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/limaJavier/scheduling/internal/config"
	"github.com/limaJavier/scheduling/pkg/model"
	log "github.com/sirupsen/logrus"
)

const (
	maxBodyBytes    = 4 << 20
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	config    config.Config
	scheduler model.Scheduler
	router    chi.Router
}

func New(config config.Config) (*Server, error) {
	scheduler, err := config.Scheduler()
	if err != nil {
		return nil, err
	}

	server := &Server{
		config:    config,
		scheduler: scheduler,
	}
	server.router = server.routes()
	return server, nil
}

func (server *Server) routes() chi.Router {
	r := chi.NewRouter()
	cors := cors.New(cors.Options{
		AllowedOrigins: server.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
	r.Use(cors.Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Post("/schedule", server.schedule)
	r.Post("/electives", server.electives)
	return r
}

func (server *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	server.router.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is cancelled
func (server *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              server.config.Addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Infof("Running server on %v", server.config.Addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
