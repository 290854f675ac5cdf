package server

import (
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/logging"
)

func newTestServer() *GracefulServer {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	logger := logging.NewJSONLogger(io.Discard, logging.ErrorLevel)
	return NewGracefulServer("127.0.0.1:0", handler, logger)
}

func TestReloadConfig(t *testing.T) {
	gs := newTestServer()

	reloadCalled := false
	gs.SetReloadFunc(func() error {
		reloadCalled = true
		return nil
	})

	if err := gs.ReloadConfig(); err != nil {
		t.Errorf("ReloadConfig() error = %v", err)
	}
	if !reloadCalled {
		t.Error("reload function was not called")
	}
}

func TestReloadConfigError(t *testing.T) {
	gs := newTestServer()

	wantErr := errors.New("bad config")
	gs.SetReloadFunc(func() error { return wantErr })

	if err := gs.ReloadConfig(); !errors.Is(err, wantErr) {
		t.Errorf("ReloadConfig() error = %v, want %v", err, wantErr)
	}
}

func TestReloadConfigWithoutFunc(t *testing.T) {
	gs := newTestServer()

	if err := gs.ReloadConfig(); err != nil {
		t.Errorf("ReloadConfig() without a reload func should be a no-op, got %v", err)
	}
}

func TestShutdownIdempotent(t *testing.T) {
	gs := newTestServer()

	if err := gs.Shutdown(time.Second); err != nil {
		t.Errorf("first Shutdown() error = %v", err)
	}
	if err := gs.Shutdown(time.Second); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}

	select {
	case <-gs.Done():
	default:
		t.Error("Done() channel should be closed after Shutdown")
	}
}
