package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Aidin1998/apiregistry/internal/infrastructure/config"
	"go.uber.org/zap"
)

const defaultShutdownTimeout = 30 * time.Second

// HTTPServer owns the listener lifecycle of the API handler
type HTTPServer struct {
	config config.ServerConfig
	logger *zap.Logger
	server *http.Server
}

// NewHTTPServer wraps handler in an http.Server configured from cfg
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) (*HTTPServer, error) {
	if handler == nil {
		return nil, errors.New("handler is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &HTTPServer{
		config: cfg,
		logger: logger.Named("http"),
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
	}, nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests for at most the configured shutdown timeout.
func (s *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.shutdown()
}

func (s *HTTPServer) shutdown() error {
	timeout := s.config.ShutdownTimeout
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}

	s.logger.Info("Shutting down HTTP server", zap.Duration("timeout", timeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		// Force close if graceful shutdown fails
		if closeErr := s.server.Close(); closeErr != nil {
			return fmt.Errorf("graceful shutdown failed: %w, force close failed: %v", err, closeErr)
		}
		return fmt.Errorf("graceful shutdown failed, forced close: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
