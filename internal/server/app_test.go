package server

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/koach/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.SecretKey = "app-test-secret"
	c.Address = "127.0.0.1:0"
	c.ShutdownTimeout = time.Second
	return c
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = orig })
	return &buf
}

func TestNewApp_MemoryStore(t *testing.T) {
	logs := captureLogs(t)

	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Contains(t, logs.String(), `"store":"memory"`)
}

func TestNewApp_BadLogLevel(t *testing.T) {
	captureLogs(t)
	c := testConfig(t)
	c.LogLevel = "chatty"

	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	logs := captureLogs(t)

	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.Contains(t, logs.String(), "App stopped")
}

func TestApp_RunFailsOnBusyPort(t *testing.T) {
	captureLogs(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	c := testConfig(t)
	c.Address = ln.Addr().String()

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}
