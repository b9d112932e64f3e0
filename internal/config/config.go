// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for weather-link with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables (WEATHER_LINK_*), including a local .env file
//  3. Configuration file
//  4. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g.
// WEATHER_LINK_STORAGE_BACKEND or WEATHER_LINK_LINK_MAX_RETRY.
const EnvPrefix = "WEATHER_LINK"

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .weather-link.yaml (current directory)
//   - .weather-link.yml (current directory)
//   - ~/.weather-link/config.yaml
//
// A .env file in the working directory is loaded next without replacing
// variables that are already set, then WEATHER_LINK_* variables override
// the file. Path expansion (~ and environment variables) is performed on
// the storage path.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".weather-link.yaml",
			".weather-link.yml",
			filepath.Join(os.Getenv("HOME"), ".weather-link", "config.yaml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", linkerrors.ErrInvalidConfig, err)
	}

	cfg.Storage.Path = expandPath(cfg.Storage.Path)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: failed to parse config file %s: %v", linkerrors.ErrInvalidConfig, path, err)
	}

	return nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// StoragePath returns the configured storage path, or the standard
// location for the backend when none is set. The memory backend has no
// path.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch c.Storage.Backend {
	case BackendSQLite:
		return expandPath("~/.weather-link/settings.db")
	case BackendFile:
		return expandPath("~/.weather-link/settings.state")
	default:
		return ""
	}
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// Validate checks the configuration against its field constraints and
// reports every violation at once.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", linkerrors.ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", linkerrors.ErrInvalidConfig, err)
	}
	return nil
}
