// Package server exposes the sync engine's trigger surface over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/pocketai/hubsync/internal/sync"
)

// TriggerFunc is the zero-argument sync entry point the server forwards
// manual trigger requests to.
type TriggerFunc func(ctx context.Context) (*sync.Result, error)

// Config holds the server settings.
type Config struct {
	Addr string
}

// Server holds the HTTP server state and dependencies.
type Server struct {
	trigger TriggerFunc
	logger  *zerolog.Logger
	httpSrv *http.Server
}

// New creates a new server instance forwarding sync triggers to trigger.
func New(cfg Config, trigger TriggerFunc, logger *zerolog.Logger) *Server {
	s := &Server{
		trigger: trigger,
		logger:  logger,
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Post("/api/v1/sync", s.handleSync)

	return r
}

// Start runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.httpSrv.Addr).Msg("HTTP server listening")
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

// syncResponse is the payload shape of the manual trigger endpoint.
type syncResponse struct {
	Status  string      `json:"status"`
	Created int         `json:"created"`
	Updated int         `json:"updated"`
	Skipped int         `json:"skipped"`
	Message string      `json:"message,omitempty"`
	Skips   []sync.Skip `json:"skips,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSync runs one sync and relays its summary. Per-item failures are
// already absorbed by the engine and only show up in the skipped count;
// an abort-level failure (hub unreachable, attribution) surfaces as an
// error status carrying the underlying description.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	result, err := s.trigger(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Manual sync failed")
		writeJSON(w, http.StatusBadGateway, syncResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, syncResponse{
		Status:  "success",
		Created: result.Created,
		Updated: result.Updated,
		Skipped: result.Skipped,
		Message: result.Summary(),
		Skips:   result.Skips,
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
