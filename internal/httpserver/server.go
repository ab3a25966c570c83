// Package httpserver exposes the converter over HTTP.
//
// Routes:
//
//	POST /v1/convert   api_data.json in, Swagger 2.0 out
//	POST /v1/validate  Swagger 2.0 in, validation report out
//	GET  /healthz      liveness
//	GET  /metrics      Prometheus metrics
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/negroni"
)

// Server serves conversion requests. The handler is safe for concurrent use.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	metrics  *Metrics
	registry *prometheus.Registry
	handler  http.Handler
}

// New builds a Server. A nil logger uses slog.Default().
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	m := NewMetrics()
	reg, err := NewRegistry(m)
	if err != nil {
		return nil, fmt.Errorf("httpserver: registering metrics: %w", err)
	}
	s := &Server{cfg: cfg, logger: logger, metrics: m, registry: reg}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/v1/convert", s.instrument("convert", s.handleConvert)).Methods(http.MethodPost)
	router.HandleFunc("/v1/validate", s.instrument("validate", s.handleValidate)).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})).Methods(http.MethodGet)
	return s.wrap(router)
}

// wrap applies recovery, request ids and access logging around h.
func (s *Server) wrap(h http.Handler) http.Handler {
	recovery := negroni.NewRecovery()
	recovery.PrintStack = false
	recovery.Logger = slog.NewLogLogger(s.logger.Handler(), slog.LevelError)

	n := negroni.New(recovery, negroni.HandlerFunc(requestID), negroni.HandlerFunc(s.logRequest))
	n.UseHandler(h)
	return n
}

// Run listens on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("httpserver: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("httpserver: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver: shutdown: %w", err)
	}
	return nil
}
