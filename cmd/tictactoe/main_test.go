package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Mode:     config.ModeWeb,
		LogLevel: "info",
		HTTP: config.HTTP{
			Addr:              "127.0.0.1:0",
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   time.Second,
		},
		Session: config.Session{TTL: time.Minute, SweepInterval: time.Second},
		TUI:     config.TUI{XColor: 9, OColor: 12},
	}
}

func TestServeStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, testConfig(), zerolog.Nop(), app.NewService(zerolog.Nop())) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func TestServeReportsListenError(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.Addr = "127.0.0.1:-1"
	// Sweep everything almost immediately while the janitor is alive.
	cfg.Session.TTL = time.Nanosecond
	cfg.Session.SweepInterval = time.Millisecond
	svc := app.NewService(zerolog.Nop())

	err := serve(context.Background(), cfg, zerolog.Nop(), svc)
	assert.Error(t, err)

	// The janitor must have stopped with serve.
	time.Sleep(20 * time.Millisecond)
	_, err = svc.CreateGame()
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, svc.Len())
}

func TestNewLoggerTUIWithoutFileIsSilent(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = config.ModeTUI
	logger, closeLog, err := newLogger(cfg)
	require.NoError(t, err)
	defer closeLog()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewLoggerWritesFile(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = config.ModeTUI
	cfg.LogFile = filepath.Join(t.TempDir(), "ttt.log")

	logger, closeLog, err := newLogger(cfg)
	require.NoError(t, err)
	logger.Info().Msg("hello")
	closeLog()

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"message":"hello"`)
}
