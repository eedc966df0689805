package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":3000"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	srv := newTestServer(t, config.Server{HTTPAddress: ":3000", RequestTimeout: 7 * time.Second})

	assert.Equal(t, ":3000", srv.httpServer.server.Addr)
	assert.Equal(t, 7*time.Second, srv.httpServer.server.ReadTimeout)
	assert.Equal(t, 7*time.Second, srv.httpServer.server.WriteTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newTestServer(t, config.Server{HTTPAddress: l.Addr().String()})

	err = srv.run(context.Background())

	assert.Error(t, err)
}
