package config

import (
	"fmt"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var cfgFile = "tictactoe/config.yml"

const (
	ModeWeb = "web"
	ModeTUI = "tui"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type Config struct {
	Mode     string  `yaml:"mode" env:"TICTACTOE_MODE" env-default:"web"`
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	HTTP     HTTP    `yaml:"http"`
	Session  Session `yaml:"session"`
	TUI      TUI     `yaml:"tui"`
}

type HTTP struct {
	Addr              string        `yaml:"addr" env:"TICTACTOE_HTTP_ADDR" env-default:":8080"`
	ReadHeaderTimeout time.Duration `yaml:"read-header-timeout" env:"TICTACTOE_HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown-timeout" env:"TICTACTOE_HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Session controls how long an abandoned web game is kept.
type Session struct {
	TTL           time.Duration `yaml:"ttl" env:"TICTACTOE_SESSION_TTL" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"TICTACTOE_SESSION_SWEEP_INTERVAL" env-default:"1m"`
}

// TUI holds 256-colour palette indices for the marks.
type TUI struct {
	XColor int `yaml:"x-color" env:"TICTACTOE_TUI_X_COLOR" env-default:"9"`
	OColor int `yaml:"o-color" env:"TICTACTOE_TUI_O_COLOR" env-default:"12"`
}

// Load reads path, or the first tictactoe/config.yml in the XDG config
// directories when path is empty. Without a file, defaults and environment
// variables apply.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err == nil {
			path = found
		}
	}

	cfg := &Config{}
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWeb, ModeTUI:
	default:
		return &InvalidConfig{fmt.Sprintf("unknown mode %q", c.Mode)}
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	for name, d := range map[string]time.Duration{
		"http.read-header-timeout": c.HTTP.ReadHeaderTimeout,
		"http.shutdown-timeout":    c.HTTP.ShutdownTimeout,
		"session.ttl":              c.Session.TTL,
		"session.sweep-interval":   c.Session.SweepInterval,
	} {
		if d <= 0 {
			return &InvalidConfig{fmt.Sprintf("%s must be positive", name)}
		}
	}
	for _, col := range []int{c.TUI.XColor, c.TUI.OColor} {
		if col < 0 || col > 255 {
			return &InvalidConfig{"palette colours must be within 0-255"}
		}
	}
	return nil
}
