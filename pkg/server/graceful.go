// Package server wraps net/http serving with signal-driven graceful shutdown
// and SIGHUP-triggered configuration reload.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/logging"
)

// ReloadFunc re-applies configuration on SIGHUP. A nil func disables reload.
type ReloadFunc func() error

// GracefulServer runs an http.Handler and drains in-flight requests on
// SIGINT or SIGTERM before exiting.
type GracefulServer struct {
	server       *http.Server
	logger       logging.Logger
	reloadFn     ReloadFunc
	shutdownCh   chan struct{}
	shutdownOnce sync.Once
}

// NewGracefulServer creates a server on addr with conservative timeouts.
func NewGracefulServer(addr string, handler http.Handler, logger logging.Logger) *GracefulServer {
	return &GracefulServer{
		server: &http.Server{
			Addr:           addr,
			Handler:        handler,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    120 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		logger:     logger.With(logging.String("component", "server")),
		shutdownCh: make(chan struct{}),
	}
}

// SetReloadFunc registers the function invoked on SIGHUP.
func (gs *GracefulServer) SetReloadFunc(fn ReloadFunc) {
	gs.reloadFn = fn
}

// Start serves until the listener closes. Signal handling runs alongside and
// drives Shutdown, so a clean stop returns nil.
func (gs *GracefulServer) Start() error {
	go gs.handleSignals()

	gs.logger.Info("starting HTTP server", logging.String("addr", gs.server.Addr))
	if err := gs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, bounded by timeout. Safe to call more
// than once; only the first call does work.
func (gs *GracefulServer) Shutdown(timeout time.Duration) error {
	var err error
	gs.shutdownOnce.Do(func() {
		close(gs.shutdownCh)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		gs.logger.Info("shutting down", logging.Duration("timeout", timeout))
		if shutdownErr := gs.server.Shutdown(ctx); shutdownErr != nil {
			err = shutdownErr
			gs.logger.Error("shutdown failed", logging.Error(shutdownErr))
			return
		}
		gs.logger.Info("shutdown complete")
	})
	return err
}

// Done is closed once shutdown has started.
func (gs *GracefulServer) Done() <-chan struct{} {
	return gs.shutdownCh
}

// ReloadConfig invokes the registered reload function.
func (gs *GracefulServer) ReloadConfig() error {
	if gs.reloadFn == nil {
		gs.logger.Warn("reload requested but no reload function registered")
		return nil
	}
	return gs.reloadFn()
}

func (gs *GracefulServer) handleSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range sigCh {
		switch sig {
		case syscall.SIGINT, syscall.SIGTERM:
			gs.logger.Info("received shutdown signal", logging.String("signal", sig.String()))
			if err := gs.Shutdown(30 * time.Second); err != nil {
				os.Exit(1)
			}
			return

		case syscall.SIGHUP:
			gs.logger.Info("received SIGHUP, reloading configuration")
			if err := gs.ReloadConfig(); err != nil {
				gs.logger.Error("configuration reload failed", logging.Error(err))
			}
		}
	}
}
