package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/HerbFarmCalc_Go/internal/database"
	"github.com/osse101/HerbFarmCalc_Go/internal/farming"
	"github.com/osse101/HerbFarmCalc_Go/internal/handler"
	"github.com/osse101/HerbFarmCalc_Go/internal/logger"
	"github.com/osse101/HerbFarmCalc_Go/internal/metrics"
	"github.com/osse101/HerbFarmCalc_Go/internal/pricing"
)

// Server owns the HTTP listener for the calculator API
type Server struct {
	httpServer *http.Server
}

func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, farmingService farming.Service, priceService pricing.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, farmingService, priceService),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the HTTP route tree. Middleware runs in the order it is registered.
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, farmingService farming.Service, priceService pricing.Service) http.Handler {
	r := chi.NewRouter()
	limiter := NewRateLimiter(RateLimitRequests, RateLimitWindow)

	r.Use(requestIDMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	proxies := ParseTrustedProxies(trustedProxies)
	r.Use(RateLimitMiddleware(proxies, limiter))
	r.Use(AuthMiddleware(apiKey, proxies, limiter))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool, priceService))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/calculate", handler.HandleCalculate(farmingService))

		r.Get("/catalog", handler.HandleGetCatalog())
		r.Get("/herbs", handler.HandleGetHerbs())
		r.Get("/patches", handler.HandleGetPatches())

		r.Route("/players", func(r chi.Router) {
			r.Get("/", handler.HandleListPlayers(farmingService))
			r.Get("/{name}", handler.HandleGetPlayer(farmingService))
			r.Put("/{name}", handler.HandleSavePlayer(farmingService))
			r.Delete("/{name}", handler.HandleDeletePlayer(farmingService))
		})

		r.Route("/prices", func(r chi.Router) {
			r.Get("/", handler.HandleGetPrices(priceService))
			r.Get("/{id}", handler.HandleGetItemPrice(priceService))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/prices/invalidate", handler.HandleInvalidatePrices(priceService))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// requestIDMiddleware attaches a request ID to the context and echoes it in the response.
// A client-supplied X-Request-ID is reused so logs can be joined across services.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

// quietPaths are polled by probes and scrapers and are not access-logged
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

func isQuietPath(path string) bool {
	return slices.ContainsFunc(quietPaths, func(p string) bool {
		return strings.HasPrefix(path, p)
	})
}

// redactHeaders copies h with credential headers masked
func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range []string{HeaderAPIKey, HeaderAuthorization} {
		if out.Get(name) != "" {
			out.Set(name, RedactedValue)
		}
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		log := logger.FromContext(r.Context())
		log.Debug(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"headers", redactHeaders(r.Header))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Info(LogMsgServerStopping, "addr", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}
