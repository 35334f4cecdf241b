// Package config holds runtime configuration for the skyangle CLI and worker.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"
)

// ErrInvalidConfig indicates that the configuration failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables read by FromEnv.
const (
	EnvTemporalHost = "SKYANGLE_TEMPORAL_HOST"
	EnvNamespace    = "SKYANGLE_NAMESPACE"
	EnvTaskQueue    = "SKYANGLE_TASK_QUEUE"
	EnvLogLevel     = "SKYANGLE_LOG_LEVEL"
	EnvLogFormat    = "SKYANGLE_LOG_FORMAT"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds connection and logging settings.
type Config struct {
	// Temporal connection
	TemporalHostPort string `json:"temporal_host_port"`
	Namespace        string `json:"namespace"`
	TaskQueue        string `json:"task_queue"`

	// Logging
	LogLevel  string `json:"log_level"`  // debug, info, warn, error
	LogFormat string `json:"log_format"` // text or json
}

// FromEnv returns DefaultConfig overlaid with any SKYANGLE_* variables that
// are set and non-empty.
func FromEnv() *Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup is FromEnv with a custom variable source.
func FromLookup(lookup func(string) (string, bool)) *Config {
	cfg := DefaultConfig()
	overlay := []struct {
		key string
		dst *string
	}{
		{EnvTemporalHost, &cfg.TemporalHostPort},
		{EnvNamespace, &cfg.Namespace},
		{EnvTaskQueue, &cfg.TaskQueue},
		{EnvLogLevel, &cfg.LogLevel},
		{EnvLogFormat, &cfg.LogFormat},
	}
	for _, o := range overlay {
		if v, ok := lookup(o.key); ok && strings.TrimSpace(v) != "" {
			*o.dst = strings.TrimSpace(v)
		}
	}
	return cfg
}

// Validate checks that every field is usable.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if _, _, err := net.SplitHostPort(c.TemporalHostPort); err != nil {
		return fmt.Errorf("%w: temporal host %q: %w", ErrInvalidConfig, c.TemporalHostPort, err)
	}
	if c.Namespace == "" {
		return fmt.Errorf("%w: namespace is required", ErrInvalidConfig)
	}
	if c.TaskQueue == "" {
		return fmt.Errorf("%w: task queue is required", ErrInvalidConfig)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log format %q (want %s or %s)", ErrInvalidConfig, c.LogFormat, LogFormatText, LogFormatJSON)
	}
	return nil
}

// Logger builds a slog.Logger writing to w at the configured level and format.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := c.level()
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if c.LogFormat == LogFormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q: %w", ErrInvalidConfig, c.LogLevel, err)
	}
	return level, nil
}
