package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the HTTP server until an interrupt or terminate signal arrives,
// then shuts it down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.GetServerAddr(), "backend", s.Cfg.GetAPIBaseURL())
		if err := s.E.Start(s.Cfg.GetServerAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			_ = s.Shutdown(context.Background())
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops the HTTP server and closes the event bridge.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")
	httpErr := s.E.Shutdown(ctx)
	bridgeErr := s.bridge.Close()
	return errors.Join(httpErr, bridgeErr)
}
