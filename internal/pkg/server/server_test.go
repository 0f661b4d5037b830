package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func nopLogger() *logger.ZapLogger {
	return &logger.ZapLogger{Logger: zap.NewNop()}
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_StartAndCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	port := freePort(t)
	gs := NewGracefulServer(e, nopLogger(), port, time.Second)

	var order []string
	gs.OnShutdown(func(context.Context) error { order = append(order, "first"); return nil })
	gs.OnShutdown(func(context.Context) error { order = append(order, "second"); return errors.New("ignored") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestGracefulServer_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, nopLogger(), l.Addr().(*net.TCPAddr).Port, time.Second)

	assert.Error(t, gs.Start(context.Background()))
}

func TestShutdownManager_CountsFailures(t *testing.T) {
	sm := NewShutdownManager(nopLogger())
	sm.Register(func(context.Context) error { return nil })
	sm.Register(func(context.Context) error { return errors.New("boom") })

	assert.Equal(t, 1, sm.Shutdown(context.Background()))
}
