package web

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/judgematch/internal/match"
	"github.com/judgematch/internal/web/handlers"
	"github.com/judgematch/internal/web/middleware"
)

// Server exposes the resolver over HTTP. The index store is shared
// read-only by all request handlers; refreshes swap in a new snapshot.
type Server struct {
	store      *match.Store
	db         *sql.DB
	logger     *zap.Logger
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a resolver server on addr. The db is used only by the
// refresh endpoint to reload the persisted name index.
func NewServer(addr string, store *match.Store, db *sql.DB, logger *zap.Logger) *Server {
	s := &Server{store: store, db: db, logger: logger}
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	resolveHandler := &handlers.ResolveHandler{Store: s.store}
	refreshHandler := &handlers.RefreshHandler{DB: s.db, Store: s.store, Logger: s.logger}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/resolve", resolveHandler.Resolve).Methods("GET")
	api.HandleFunc("/stats", resolveHandler.Stats).Methods("GET")
	if s.db != nil {
		api.HandleFunc("/refresh", refreshHandler.Refresh).Methods("POST")
	}

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging(s.logger))
}

// Start runs the server until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info("resolver server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
