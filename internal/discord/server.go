package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	healthServerReadHeaderTimeout = 5 * time.Second
	healthServerShutdownTimeout   = 5 * time.Second
)

// HTTPServer exposes the bot's liveness and metrics to the orchestrator.
// It is internal only and carries no authentication.
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	srv := &HTTPServer{bot: bot}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", srv.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	srv.server = &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: healthServerReadHeaderTimeout,
	}
	return srv
}

// Start serves in the background; a failure to bind is logged, not fatal
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthServerStarting, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthServerFailed, "error", err)
		}
	}()
}

func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), healthServerShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error(LogMsgHealthServerFailed, "error", err)
	}
}
