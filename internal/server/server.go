package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mchassin/bellbench/internal/bellman"
	"github.com/mchassin/bellbench/internal/config"
	"github.com/mchassin/bellbench/internal/logging"
	"github.com/mchassin/bellbench/internal/service"
)

// ─────────────────────────────────────────────────────────────────────────────
// Server Configuration
// ─────────────────────────────────────────────────────────────────────────────

const (
	// readHeaderTimeout bounds how long the server waits for request headers.
	readHeaderTimeout = 5 * time.Second
	// shutdownTimeout bounds graceful shutdown after a termination signal.
	shutdownTimeout = 10 * time.Second
)

// Option configures a Server.
type Option func(*Server)

// Server exposes benchmark runs over HTTP. One request runs one update pass
// of one strategy and returns the measured wall-clock time.
type Server struct {
	svc            service.Service
	httpServer     *http.Server
	logger         logging.Logger
	rateLimiter    *RateLimiter
	securityConfig SecurityConfig
	shutdownSignal chan os.Signal
}

// NewServer creates a server backed by the given benchmark service. The
// listen port and grid cap come from cfg; options override the defaults.
func NewServer(svc service.Service, cfg config.AppConfig, logger logging.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}

	s := &Server{
		svc:            svc,
		logger:         logger,
		rateLimiter:    NewRateLimiter(DefaultRateLimiterConfig()),
		securityConfig: DefaultSecurityConfig(),
		shutdownSignal: make(chan os.Signal, 1),
	}
	if cfg.MaxN > 0 {
		s.securityConfig.MaxN = cfg.MaxN
	}

	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/bench", s.withMiddleware(s.handleBench))
	mux.HandleFunc("/healthz", s.loggingMiddleware(s.handleHealth))
	mux.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s
}

// withMiddleware applies the full middleware chain: logging, then security
// headers, then rate limiting.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return s.loggingMiddleware(
		SecurityMiddleware(s.securityConfig,
			RateLimitMiddleware(s.rateLimiter, next)))
}

// Start runs the HTTP server until an interrupt or termination signal
// arrives, then shuts it down gracefully. It returns any listener error
// other than http.ErrServerClosed.
func (s *Server) Start() error {
	signal.Notify(s.shutdownSignal, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-s.shutdownSignal:
		s.logger.Info("shutting down", logging.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	s.rateLimiter.Stop()
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────────────────────────────────────

// handleBench runs one benchmark pass. Query parameters:
//
//	algo  strategy name (default "naive")
//	n     grid dimension (required)
//	beta  discount factor (default 0.96)
func (s *Server) handleBench(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed", "only GET is supported")
		return
	}

	name, n, beta, err := s.parseBenchParams(r)
	if err != nil {
		var parseErr BenchParseError
		if errors.As(err, &parseErr) {
			s.writeError(w, parseErr.StatusCode, http.StatusText(parseErr.StatusCode), parseErr.Message)
			return
		}
		s.writeError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	result, err := s.svc.Run(r.Context(), name, n, beta)
	if err != nil {
		var unknownErr *bellman.UnknownUpdaterError
		switch {
		case errors.As(err, &unknownErr):
			s.writeError(w, http.StatusNotFound, "Not Found", err.Error())
		case errors.Is(err, service.ErrMaxSizeExceeded),
			errors.Is(err, bellman.ErrInvalidSize):
			s.writeError(w, http.StatusBadRequest, "Bad Request", err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			s.writeError(w, http.StatusServiceUnavailable, "Service Unavailable", "benchmark cancelled")
		default:
			s.logger.Error("benchmark run failed", err, logging.String("algo", name), logging.Int("n", n))
			s.writeError(w, http.StatusInternalServerError, "Internal Server Error", "benchmark run failed")
		}
		return
	}

	s.writeJSONResponse(w, http.StatusOK, Response{
		Name:      result.Name,
		Algorithm: result.Algorithm,
		N:         result.N,
		Beta:      result.Beta,
		Seconds:   result.Seconds(),
		Elapsed:   result.Elapsed.String(),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseBenchParams extracts and validates the query parameters of a
// benchmark request. Errors carry the HTTP status to return.
func (s *Server) parseBenchParams(r *http.Request) (name string, n int, beta float64, err error) {
	q := r.URL.Query()

	name = q.Get("algo")
	if name == "" {
		name = "naive"
	}

	nStr := q.Get("n")
	if nStr == "" {
		return "", 0, 0, BenchParseError{Message: "missing required parameter 'n'", StatusCode: http.StatusBadRequest}
	}
	n, convErr := strconv.Atoi(nStr)
	if convErr != nil {
		return "", 0, 0, BenchParseError{Message: fmt.Sprintf("invalid parameter 'n': %q is not an integer", nStr), StatusCode: http.StatusBadRequest}
	}
	if n < 0 {
		return "", 0, 0, BenchParseError{Message: "parameter 'n' must be non-negative", StatusCode: http.StatusBadRequest}
	}
	if s.securityConfig.MaxN > 0 && n > s.securityConfig.MaxN {
		return "", 0, 0, BenchParseError{
			Message:    fmt.Sprintf("parameter 'n' exceeds the maximum of %d", s.securityConfig.MaxN),
			StatusCode: http.StatusRequestEntityTooLarge,
		}
	}

	beta = bellman.DefaultBeta
	if betaStr := q.Get("beta"); betaStr != "" {
		beta, convErr = strconv.ParseFloat(betaStr, 64)
		if convErr != nil {
			return "", 0, 0, BenchParseError{Message: fmt.Sprintf("invalid parameter 'beta': %q is not a number", betaStr), StatusCode: http.StatusBadRequest}
		}
	}

	return name, n, beta, nil
}

// writeJSONResponse encodes data as JSON with the given status code.
func (s *Server) writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

// writeError writes a standardized JSON error body.
func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSONResponse(w, status, ErrorResponse{Error: code, Message: message})
}
