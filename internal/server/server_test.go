package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-garden-keeper/internal/config"
	"github.com/MKhiriev/go-garden-keeper/internal/handler"
	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/service"
	"github.com/MKhiriev/go-garden-keeper/internal/store"
	"github.com/MKhiriev/go-garden-keeper/internal/workers"
	"github.com/MKhiriev/go-garden-keeper/models"
)

func newTestServerConfig() *config.ServerConfig {
	structured := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "secret",
			TokenIssuer:   "garden-test",
			TokenDuration: time.Hour,
			Version:       "1.0.0",
		},
	}
	return &config.ServerConfig{
		StructuredConfig: structured,
		HTTPAddress:      "127.0.0.1:0",
		TokenSignKey:     "secret",
		RequestTimeout:   time.Second,
	}
}

func newTestHandlers(t *testing.T, cfg *config.ServerConfig) *handler.Handlers {
	t.Helper()
	services, err := service.NewServices(store.NewMemoryStore(), *cfg.StructuredConfig, models.AppBuildInfo{}, nil, logger.Nop())
	require.NoError(t, err)

	h, err := handler.NewHandlers(services, nil, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

type stopWorker struct {
	stopped chan struct{}
}

func (s *stopWorker) Name() string { return "stop" }

func (s *stopWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	close(s.stopped)
	return nil
}

type brokenWorker struct{}

func (brokenWorker) Name() string                  { return "broken" }
func (brokenWorker) Run(ctx context.Context) error { return errors.New("broken") }

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, nil, newTestServerConfig(), logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NoAddress(t *testing.T) {
	cfg := newTestServerConfig()
	h := newTestHandlers(t, cfg)
	cfg.HTTPAddress = ""

	s, err := NewServer(h, nil, cfg, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServer_ServesAndStops(t *testing.T) {
	cfg := newTestServerConfig()
	worker := &stopWorker{stopped: make(chan struct{})}

	s, err := NewServer(newTestHandlers(t, cfg), workers.NewWorkers(logger.Nop(), worker), cfg, logger.Nop())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s.(*server).listener = l

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	url := fmt.Sprintf("http://%s/api/version", l.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-worker.stopped:
	default:
		t.Fatal("worker was not stopped")
	}
}

func TestServer_RunServer_WorkerFailureStopsServer(t *testing.T) {
	cfg := newTestServerConfig()

	s, err := NewServer(newTestHandlers(t, cfg), workers.NewWorkers(logger.Nop(), brokenWorker{}), cfg, logger.Nop())
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s.(*server).listener = l

	select {
	case err := <-runAsync(s):
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func runAsync(s Server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.RunServer(context.Background()) }()
	return done
}
