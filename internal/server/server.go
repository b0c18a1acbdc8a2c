// Package server exposes the card renderer as an HTTP service.
//
// The single endpoint, GET /api/top-langs, accepts the full option set as
// query parameters, runs the aggregation pipeline, and answers with an SVG
// card. Responses are cached by a hash of the canonicalized query, and
// aggregation failures are answered with a themed error card rather than a
// bare error payload, so the image stays embeddable.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/langcard/internal/config"
	"github.com/matzehuels/langcard/pkg/cache"
	"github.com/matzehuels/langcard/pkg/langstats"
)

// Server ties the aggregation pipeline, the response cache and the HTTP
// router together.
type Server struct {
	cfg     config.Config
	fetcher langstats.Fetcher
	cache   cache.Cache
	logger  *log.Logger
}

// New creates a server. The fetcher is injected so tests can substitute a
// stub for the GitHub client.
func New(cfg config.Config, fetcher langstats.Fetcher, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, fetcher: fetcher, cache: c, logger: logger}
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)

	r.Get("/api/top-langs", s.handleTopLangs)
	r.Get("/healthz", s.handleHealth)

	return r
}

// ListenAndServe runs the HTTP server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errc
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestID tags every request with a UUID, echoed in the response and
// attached to the request-scoped logger.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		logger := s.logger.With("request_id", id)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
