// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/sgsearch/internal/errors"
	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
)

// Environment variables read by Load.
const (
	EnvURL   = "SOURCEGRAPH_URL"
	EnvToken = "SOURCEGRAPH_TOKEN"
)

// Config is the resolved process configuration.
type Config struct {
	// URL is the base URL of the Sourcegraph instance.
	URL string `yaml:"url"`

	// Token is the Sourcegraph access token.
	Token string `yaml:"token"`

	// MetricsAddr is the listen address of the Prometheus endpoint.
	// Empty disables it.
	MetricsAddr string `yaml:"metrics_addr,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		URL:      sourcegraph.DefaultBaseURL,
		LogLevel: "info",
	}
}

// ConfigDir returns the sgsearch directory in the user's home.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".sgsearch"), nil
}

// DefaultConfigPath returns ~/.sgsearch/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves the configuration from defaults, the config file at path
// (or the default path when empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads defaults and the config file without consulting the
// environment or validating.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from --config
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.NewConfigError(
			"Cannot read config file",
			fmt.Sprintf("Reading %s failed", path),
			"Check the --config path, or remove the flag to use environment variables only",
			err,
		)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(
			"Invalid config file",
			fmt.Sprintf("%s is not valid YAML", path),
			"Fix the file; expected keys are url, token, metrics_addr and log_level",
			err,
		)
	}
	return cfg, nil
}

// ApplyEnv overrides file settings with non-empty environment values.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvURL)); v != "" {
		c.URL = v
	}
	if v := strings.TrimSpace(getenv(EnvToken)); v != "" {
		c.Token = v
	}
}

// Validate checks that the configuration can be used to reach Sourcegraph.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return errors.NewConfigError(
			"Sourcegraph access token is not set",
			EnvToken+" is empty and the config file has no token",
			"Export "+EnvToken+" or run: sgsearch init",
			nil,
		)
	}

	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewConfigError(
			"Invalid Sourcegraph URL",
			fmt.Sprintf("%q is not an absolute http(s) URL", c.URL),
			"Set "+EnvURL+" to the instance root, e.g. https://sourcegraph.com",
			err,
		)
	}

	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.NewConfigError(
			"Invalid log level",
			fmt.Sprintf("log_level %q is not recognized", c.LogLevel),
			"Use one of: debug, info, warn, error",
			nil,
		)
	}
	return nil
}

// Save writes cfg to path as YAML, creating the directory if needed. The file
// holds the access token, so it is written owner-only.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// MaskedToken returns the token with all but its last four characters hidden.
func (c *Config) MaskedToken() string {
	if c.Token == "" {
		return "(not set)"
	}
	if len(c.Token) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + c.Token[len(c.Token)-4:]
}

// NewLogger creates a text logger writing to w at the given level. Unknown
// levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, _ := parseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// NewClient builds the Sourcegraph client described by cfg.
func NewClient(cfg *Config) *sourcegraph.Client {
	return sourcegraph.NewClient(cfg.URL, cfg.Token)
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
