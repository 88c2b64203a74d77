// SPDX-License-Identifier: MIT

// Package logging builds the structured slog logger shared by the zola
// commands. Algorithm packages never log; the service, store and transport
// layers receive a *slog.Logger from here.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel indicates a level name ParseLevel does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects the handler.
//
// Example:
//
//	log := logging.New(logging.Config{Level: "debug", Format: "json", Service: "zola"})
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info; unknown
	// names fall back to info as well.
	Level string `yaml:"level"`

	// Format is "text" (default) or "json".
	Format string `yaml:"format"`

	// Service, when set, tags every record with service=<name>.
	Service string `yaml:"-"`

	// Output defaults to os.Stderr.
	Output io.Writer `yaml:"-"`
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	level, _ := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, FormatJSON) {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}

	return slog.New(handler)
}
