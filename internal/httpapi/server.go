// ABOUTME: HTTP API server wiring routes for every club feature.
// ABOUTME: gorilla/mux router with identity, logging, and metrics middleware.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hvilches/clubtrack/internal/club"
	"github.com/hvilches/clubtrack/internal/tenant"
	"github.com/hvilches/clubtrack/pkg/logger"
)

// Server serves the club API.
type Server struct {
	svc      *club.Service
	resolver *tenant.Resolver
	log      logger.Logger
	router   *mux.Router
}

// NewServer builds the router.
func NewServer(svc *club.Service, resolver *tenant.Resolver, log logger.Logger) *Server {
	s := &Server{
		svc:      svc,
		resolver: resolver,
		log:      log.Named("http"),
	}
	s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.identityMiddleware)
	api.Use(s.observeMiddleware)

	api.HandleFunc("/players", s.handleListPlayers).Methods(http.MethodGet)
	api.HandleFunc("/players", s.handleCreatePlayer).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", s.handleUpdatePlayer).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}", s.handleDeactivatePlayer).Methods(http.MethodDelete)

	api.HandleFunc("/matches", s.handleListMatches).Methods(http.MethodGet)
	api.HandleFunc("/matches", s.handleCreateMatch).Methods(http.MethodPost)
	api.HandleFunc("/matches/{id}", s.handleUpdateMatch).Methods(http.MethodPut)
	api.HandleFunc("/matches/{id}", s.handleDeleteMatch).Methods(http.MethodDelete)

	api.HandleFunc("/tasks", s.handleListTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", s.handleCreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/classifications", s.handleClassifications).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", s.handleUpdateTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}", s.handleDeleteTask).Methods(http.MethodDelete)

	api.HandleFunc("/sessions/{collection}", s.handleListSessions).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{collection}", s.handleCreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{collection}/{id}", s.handleUpdateSession).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{collection}/{id}", s.handleDeleteSession).Methods(http.MethodDelete)

	api.HandleFunc("/wellness", s.handleSubmitWellness).Methods(http.MethodPost)
	api.HandleFunc("/wellness", s.handleListWellness).Methods(http.MethodGet)
	api.HandleFunc("/wellness/today", s.handleTodayWellness).Methods(http.MethodGet)

	api.HandleFunc("/rpe", s.handleSubmitEffort).Methods(http.MethodPost)
	api.HandleFunc("/rpe/today", s.handleTodayEffort).Methods(http.MethodGet)

	api.HandleFunc("/calendar", s.handleListCalendar).Methods(http.MethodGet)
	api.HandleFunc("/calendar/watch", s.handleWatchCalendar).Methods(http.MethodGet)

	api.HandleFunc("/tenants", s.handleListTenants).Methods(http.MethodGet)
	api.HandleFunc("/tenants", s.handleCreateTenant).Methods(http.MethodPost)
	api.HandleFunc("/tenants/{id}", s.handleUpdateTenant).Methods(http.MethodPut)
	api.HandleFunc("/tenants/{id}", s.handleDeactivateTenant).Methods(http.MethodDelete)

	s.router = r
}

// ListenAndServe runs the server until ctx is cancelled, then drains.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info(ctx, "listening", logger.String("addr", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
