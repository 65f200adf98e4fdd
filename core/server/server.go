package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Server runs one http.Server at a time with graceful shutdown. The zero
// timeouts from New's defaults are production-safe; everything is
// overridable through Options or Config.
type Server struct {
	addr            string
	logger          *slog.Logger
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	maxHeaderBytes  int

	mu  sync.Mutex
	srv *http.Server // non-nil while running
}

// New creates a Server listening on addr once started.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start serves h and blocks until the listener fails or ctx is canceled,
// returning ctx.Err() in the latter case. Cancellation does not shut the
// listener down; pair Start with Stop, or use Run for both.
func (s *Server) Start(ctx context.Context, h http.Handler) error {
	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	srv := &http.Server{
		Addr:           s.addr,
		Handler:        h,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
	}
	s.srv = srv
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "http server listening", slog.String("addr", s.addr))

	failed := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			failed <- err
		}
	}()

	select {
	case err := <-failed:
		s.mu.Lock()
		s.srv = nil
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains in-flight requests within the shutdown timeout.
// A server that never started is a no-op.
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.logger.Info("http server shutting down", slog.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("http server shutdown failed", slog.Any("error", err))
		return err
	}
	s.logger.Info("http server stopped")
	return nil
}

// Run adapts the server to errgroup.Go: the returned function serves h and,
// when ctx is canceled, shuts down gracefully and reports nil so
// cancellation is not treated as a failure.
func (s *Server) Run(ctx context.Context, h http.Handler) func() error {
	return func() error {
		done := make(chan error, 1)
		go func() { done <- s.Start(ctx, h) }()

		select {
		case <-ctx.Done():
			if err := s.Stop(); err != nil {
				s.logger.Error("shutdown on cancellation failed", slog.Any("error", err))
			}
			<-done
			return nil
		case err := <-done:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Run serves h on addr with default settings until ctx is canceled.
func Run(ctx context.Context, addr string, h http.Handler) error {
	return New(addr).Start(ctx, h)
}
