// Command tictactoe serves a tic-tac-toe game with a jump-back move history,
// either as a web page or as a terminal application.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/app"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/config"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/tui"
	"github.com/jaminalder/timetravel-tic-tac-toe/internal/web"
)

var (
	flagConfig = flag.String("config", "", "Path to a YAML config file")
	flagMode   = flag.String("mode", "", "Front end to run (web or tui)")
	flagAddr   = flag.String("addr", "", "HTTP listen address in web mode")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *flagMode != "" {
		cfg.Mode = *flagMode
	}
	if *flagAddr != "" {
		cfg.HTTP.Addr = *flagAddr
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exit")
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	switch cfg.Mode {
	case config.ModeTUI:
		ui := tui.NewGameUI(tui.ThemeFromPalette(cfg.TUI.XColor, cfg.TUI.OColor), logger)
		return tui.Run(ctx, ui, nil)
	default:
		return serve(ctx, cfg, logger, app.NewService(logger))
	}
}

func serve(ctx context.Context, cfg *config.Config, logger zerolog.Logger, svc *app.Service) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go svc.Janitor(ctx, cfg.Session.SweepInterval, cfg.Session.TTL)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           web.NewServer(svc, logger),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTP.Addr).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// newLogger writes to stdout in web mode, plus the log file when one is set.
// The terminal front end owns the screen, so there it logs to the file only.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
		if err != nil {
			return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closeLog = func() { _ = f.Close() }
	}
	if cfg.Mode != config.ModeTUI {
		writers = append(writers, os.Stdout)
	}
	if len(writers) == 0 {
		return zerolog.Nop(), closeLog, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return logger, closeLog, nil
}
