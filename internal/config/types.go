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

// Package config types define the configuration structures used throughout
// weather-link. Every field can come from the YAML file or from a
// WEATHER_LINK_* environment variable named after its section and field,
// e.g. WEATHER_LINK_STORAGE_PATH. Unprefixed variables are never read.
package config

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the complete configuration for weather-link.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Link    LinkConfig    `yaml:"link"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects where persisted settings live. An empty Path means
// the backend's standard location under ~/.weather-link.
type StorageConfig struct {
	Backend string `yaml:"backend" split_words:"true" validate:"required,oneof=file sqlite memory"`
	Path    string `yaml:"path" split_words:"true"`

	// GuardFailures is the number of consecutive write failures after which
	// writes are suspended for GuardTimeoutSeconds.
	GuardFailures       uint32 `yaml:"guard_failures" split_words:"true" validate:"min=1,max=100"`
	GuardTimeoutSeconds int    `yaml:"guard_timeout_seconds" split_words:"true" validate:"min=1,max=3600"`
}

// LinkConfig sizes the message channel and the retry ceiling.
type LinkConfig struct {
	MaxRetry   int `yaml:"max_retry" split_words:"true" validate:"min=1,max=10"`
	InboxSize  int `yaml:"inbox_size" split_words:"true" validate:"min=64,max=8200"`
	OutboxSize int `yaml:"outbox_size" split_words:"true" validate:"min=64,max=8200"`
}

// LogConfig controls the slog handler built by the CLI.
type LogConfig struct {
	Level  string `yaml:"level" split_words:"true" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" split_words:"true" validate:"oneof=text json"`
}

// DefaultConfig returns a Config matching the watch face defaults: a
// 1200 byte inbox, a 500 byte outbox and two retries.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:             BackendFile,
			GuardFailures:       3,
			GuardTimeoutSeconds: 30,
		},
		Link: LinkConfig{
			MaxRetry:   2,
			InboxSize:  1200,
			OutboxSize: 500,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
