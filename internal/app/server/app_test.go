package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func testApp(addr string) *App {
	return &App{
		server: &http.Server{
			Addr:              addr,
			Handler:           http.NotFoundHandler(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: slog.Default(),
	}
}

func TestApp_Run_GracefulShutdown(t *testing.T) {
	app := testApp("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestApp_Run_ListenError(t *testing.T) {
	app := testApp("256.0.0.1:bad")

	err := app.Run(context.Background())

	require.Error(t, err)
}

func TestApp_Close_WithoutStorage(t *testing.T) {
	assert.NoError(t, testApp(":0").Close())
}
