package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the demo server settings.
type Config struct {
	ListenAddr              string
	LogLevel                string
	LogFormat               string
	Formatter               string
	GracefulShutdownTimeout int
	MetricsEnabled          bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("formatter", "default")
	v.SetDefault("graceful_shutdown_timeout", 15)
	v.SetDefault("metrics_enabled", true)
}

// Load reads settings from v: config file (if one is set), then TIMEWRAP_*
// environment variables, then the unprefixed LISTEN_ADDR and
// GRACEFUL_SHUTDOWN_TIMEOUT.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("timewrap")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("listen_addr", "TIMEWRAP_LISTEN_ADDR", "LISTEN_ADDR"); err != nil {
		return Config{}, fmt.Errorf("bind env listen_addr: %w", err)
	}
	if err := v.BindEnv("graceful_shutdown_timeout", "TIMEWRAP_GRACEFUL_SHUTDOWN_TIMEOUT", "GRACEFUL_SHUTDOWN_TIMEOUT"); err != nil {
		return Config{}, fmt.Errorf("bind env graceful_shutdown_timeout: %w", err)
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		ListenAddr:              v.GetString("listen_addr"),
		LogLevel:                strings.ToLower(v.GetString("log_level")),
		LogFormat:               strings.ToLower(v.GetString("log_format")),
		Formatter:               v.GetString("formatter"),
		GracefulShutdownTimeout: v.GetInt("graceful_shutdown_timeout"),
		MetricsEnabled:          v.GetBool("metrics_enabled"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: want json or console", c.LogFormat)
	}
	if c.ListenAddr == "" {
		return errors.New("listen address is empty")
	}
	if c.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("invalid graceful shutdown timeout %d", c.GracefulShutdownTimeout)
	}
	return nil
}
