// SPDX-License-Identifier: MIT

// Package config loads subiso runtime settings.
//
// Priority: SUBISO_* environment > YAML file > defaults. The merged result is
// validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subiso/internal/logging"
	"github.com/katalvlaran/subiso/ullman"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SUBISO_"

// ErrInvalidConfig wraps every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full subiso configuration.
type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Match  MatchConfig  `json:"match" yaml:"match"`
	Server ServerConfig `json:"server" yaml:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// MatchConfig holds matcher defaults shared by the CLI and the server.
type MatchConfig struct {
	// Mode is "strict" or "mono".
	Mode string `json:"mode" yaml:"mode"`
	// Parallelism > 1 enables the parallel fan-out.
	Parallelism int `json:"parallelism" yaml:"parallelism"`
	// Timeout bounds one match; 0 disables the bound.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string        `json:"addr" yaml:"addr"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	// MaxBodyBytes caps the /v1/match request body.
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Match: MatchConfig{
			Mode:        "strict",
			Parallelism: 0,
			Timeout:     30 * time.Second,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    4 << 20,
		},
	}
}

// Load merges defaults, the YAML file at path (if path is non-empty) and
// SUBISO_* environment overrides, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return nil
}

// loadEnv applies overrides; malformed numbers and durations are reported
// together.
func loadEnv(cfg *Config) error {
	var errs []error

	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvPrefix + "MODE"); v != "" {
		cfg.Match.Mode = v
	}
	if v := os.Getenv(EnvPrefix + "PARALLELISM"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Match.Parallelism = i
		} else {
			errs = append(errs, fmt.Errorf("%sPARALLELISM=%q: %w", EnvPrefix, v, err))
		}
	}
	if v := os.Getenv(EnvPrefix + "TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Match.Timeout = d
		} else {
			errs = append(errs, fmt.Errorf("%sTIMEOUT=%q: %w", EnvPrefix, v, err))
		}
	}
	if v := os.Getenv(EnvPrefix + "ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvPrefix + "SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ShutdownTimeout = d
		} else {
			errs = append(errs, fmt.Errorf("%sSHUTDOWN_TIMEOUT=%q: %w", EnvPrefix, v, err))
		}
	}
	if v := os.Getenv(EnvPrefix + "MAX_BODY_BYTES"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Server.MaxBodyBytes = i
		} else {
			errs = append(errs, fmt.Errorf("%sMAX_BODY_BYTES=%q: %w", EnvPrefix, v, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Validate checks every field that has a restricted domain.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: log.format: %w", ErrInvalidConfig, err)
	}
	if _, err := ullman.ParseMode(c.Match.Mode); err != nil {
		return fmt.Errorf("%w: match.mode: %w", ErrInvalidConfig, err)
	}
	if c.Match.Parallelism < 0 {
		return fmt.Errorf("%w: match.parallelism must be >= 0", ErrInvalidConfig)
	}
	if c.Match.Timeout < 0 {
		return fmt.Errorf("%w: match.timeout must be >= 0", ErrInvalidConfig)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalidConfig)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must be > 0", ErrInvalidConfig)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be > 0", ErrInvalidConfig)
	}

	return nil
}

// MatchOptions translates the matcher section into ullman options.
// Timeout is not included: callers derive a context from it.
func (c MatchConfig) MatchOptions() ([]ullman.Option, error) {
	mode, err := ullman.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	return []ullman.Option{ullman.WithMode(mode), ullman.WithParallelism(c.Parallelism)}, nil
}
