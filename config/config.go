// SPDX-License-Identifier: MIT

// Package config loads the zola YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/armaan-choudhary/zola/constellation"
	"github.com/armaan-choudhary/zola/logging"
	"github.com/armaan-choudhary/zola/sky"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "ZOLA_CONFIG"

// ErrInvalidConfig indicates a configuration that cannot be applied.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of zola.yaml.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Store         StoreConfig         `yaml:"store"`
	Redis         RedisConfig         `yaml:"redis"`
	Constellation ConstellationConfig `yaml:"constellation"`
	Log           logging.Config      `yaml:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MetricsAddr, when set, serves /metrics on a separate listener too.
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}

// StoreConfig configures SQLite persistence.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig configures live notifications. An empty Addr disables them.
type RedisConfig struct {
	Addr          string `yaml:"addr"`
	Password      string `yaml:"password,omitempty"`
	DB            int    `yaml:"db"`
	ChannelPrefix string `yaml:"channel_prefix"`
}

// ConstellationConfig selects the degree policy, the page size and when
// star messages are revealed.
type ConstellationConfig struct {
	MaxDegree    int  `yaml:"max_degree"`
	HubAllowance bool `yaml:"hub_allowance"`
	Jitter       bool `yaml:"jitter"`
	StarsPerPage int  `yaml:"stars_per_page"`
	// RevealAt is an RFC 3339 instant; messages stay hidden until then.
	// Empty reveals them immediately.
	RevealAt string `yaml:"reveal_at,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Store:  StoreConfig{Path: "zola.db"},
		Redis:  RedisConfig{ChannelPrefix: "zola:sky"},
		Constellation: ConstellationConfig{
			MaxDegree:    constellation.DefaultMaxDegree,
			StarsPerPage: sky.DefaultStarsPerPage,
		},
		Log: logging.Config{Level: "info", Format: logging.FormatText},
	}
}

// Load reads path (or $ZOLA_CONFIG when path is empty) over Default. With
// neither set, Default is returned as is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports ErrInvalidConfig for unusable values.
func (c Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("server.addr is empty: %w", ErrInvalidConfig)
	case c.Store.Path == "":
		return fmt.Errorf("store.path is empty: %w", ErrInvalidConfig)
	case c.Constellation.MaxDegree < 0:
		return fmt.Errorf("constellation.max_degree %d < 0: %w", c.Constellation.MaxDegree, ErrInvalidConfig)
	case c.Constellation.StarsPerPage < 1:
		return fmt.Errorf("constellation.stars_per_page %d < 1: %w", c.Constellation.StarsPerPage, ErrInvalidConfig)
	}
	if _, err := c.RevealTime(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %v: %w", err, ErrInvalidConfig)
	}
	if f := c.Log.Format; f != logging.FormatText && f != logging.FormatJSON && f != "" {
		return fmt.Errorf("log.format %q: %w", f, ErrInvalidConfig)
	}

	return nil
}

// Policy converts the constellation section.
func (c Config) Policy() constellation.Policy {
	return constellation.Policy{
		MaxDegree:    c.Constellation.MaxDegree,
		HubAllowance: c.Constellation.HubAllowance,
		Jitter:       c.Constellation.Jitter,
	}
}

// RevealTime parses constellation.reveal_at; empty yields the zero time.
func (c Config) RevealTime() (time.Time, error) {
	if c.Constellation.RevealAt == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.Constellation.RevealAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("constellation.reveal_at: %v: %w", err, ErrInvalidConfig)
	}

	return t, nil
}

// WriteDefault writes Default as YAML to path, creating parent directories.
// An existing file is left untouched and reported with os.ErrExist.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s: %w", path, os.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: marshal default: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
