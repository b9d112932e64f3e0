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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sirseerhq/weather-link/internal/config"
	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
	"github.com/sirseerhq/weather-link/internal/persist"
	"github.com/sirseerhq/weather-link/internal/sqlstore"
	"github.com/sirseerhq/weather-link/internal/state"
)

// storageFlags are shared by every command that touches stored settings.
// They override the config file and the environment.
func storageFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("storage", pflag.ContinueOnError)
	fs.String("backend", "", "Settings storage backend: file, sqlite or memory")
	fs.String("storage-path", "", "Settings file or database path")
	return fs
}

// app holds what a command needs after configuration is resolved.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	storage persist.Storage
	raw     persist.Storage
	closers []io.Closer
}

// loadConfig resolves the configuration for cmd: file, environment and
// then any storage flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("backend"); f != nil && f.Changed {
		cfg.Storage.Backend = f.Value.String()
	}
	if f := cmd.Flags().Lookup("storage-path"); f != nil && f.Changed {
		cfg.Storage.Path = f.Value.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// setup loads configuration, builds the logger and opens the configured
// settings storage behind a circuit breaker.
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())

	a := &app{cfg: cfg, logger: logger}
	if err := a.openStorage(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) openStorage() error {
	path := a.cfg.StoragePath()

	switch a.cfg.Storage.Backend {
	case config.BackendFile:
		store, err := state.OpenFileStorage(path)
		if err != nil {
			return err
		}
		a.raw = store
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create storage directory: %w: %w", linkerrors.ErrStorageUnavailable, err)
		}
		db, err := sqlstore.Open(path, a.logger)
		if err != nil {
			return err
		}
		a.raw = db
		a.closers = append(a.closers, db)
	case config.BackendMemory:
		a.raw = persist.NewMemoryStorage()
	default:
		return fmt.Errorf("%w: unknown storage backend %q", linkerrors.ErrInvalidConfig, a.cfg.Storage.Backend)
	}

	a.storage = persist.NewGuarded(a.raw, persist.GuardSettings{
		MaxFailures: a.cfg.Storage.GuardFailures,
		Timeout:     time.Duration(a.cfg.Storage.GuardTimeoutSeconds) * time.Second,
	})
	a.logger.Debug("settings storage opened", "backend", a.cfg.Storage.Backend, "path", path)
	return nil
}

// resetStorage removes every stored setting.
func (a *app) resetStorage() error {
	type resetter interface{ Reset() error }
	if r, ok := a.raw.(resetter); ok {
		return r.Reset()
	}
	for _, key := range []persist.Key{
		persist.KeyDebugMode,
		persist.KeyDisplayBattery,
		persist.KeyWeatherService,
		persist.KeyWeatherScale,
	} {
		if err := a.raw.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("failed to close storage", "error", err)
		}
	}
}
