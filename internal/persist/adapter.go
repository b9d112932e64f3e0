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

package persist

import (
	"errors"
	"fmt"
	"log/slog"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
	"github.com/sirseerhq/weather-link/internal/weather"
)

// Displays are the indicator layers driven directly by the loaded settings.
type Displays interface {
	EnableBattery()
	DisableBattery()
	EnableDebug()
	DisableDebug()
	DebugMessage(msg string)
}

// Adapter reads and writes the configuration subset of weather.Data.
type Adapter struct {
	storage  Storage
	displays Displays
	logger   *slog.Logger
}

// NewAdapter creates an adapter over storage. displays must be set up
// before Load is called because loading drives them.
func NewAdapter(storage Storage, displays Displays, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		storage:  storage,
		displays: displays,
		logger:   logger,
	}
}

// Load restores debug, battery, provider and scale into st. Each key falls
// back to its default when absent or unreadable. The debug and battery
// displays are switched as soon as their flag is read. Read failures are
// returned joined, after every key has been applied.
func (a *Adapter) Load(st *weather.Data) error {
	var errs []error

	st.Debug = a.loadBool(KeyDebugMode, weather.DefaultDebug, &errs)
	if st.Debug {
		a.displays.EnableDebug()
		a.displays.DebugMessage("Initializing...")
	} else {
		a.displays.DisableDebug()
	}

	st.Battery = a.loadBool(KeyDisplayBattery, weather.DefaultBattery, &errs)
	if st.Battery {
		a.displays.EnableBattery()
	} else {
		a.displays.DisableBattery()
	}

	st.Provider = weather.DefaultProvider
	if s, ok := a.loadString(KeyWeatherService, &errs); ok {
		st.Provider = weather.ParseProvider(s)
	}

	st.Scale = weather.DefaultScale
	if s, ok := a.loadString(KeyWeatherScale, &errs); ok {
		st.Scale = weather.ParseScale(s)
	}

	a.logger.Debug("persist load",
		"debug", st.Debug,
		"battery", st.Battery,
		"provider", st.Provider.String(),
		"scale", st.Scale.String())

	return errors.Join(errs...)
}

// Store writes all four settings unconditionally, in the order debug,
// battery, provider, scale. The writes are not grouped: the first failure
// is returned and earlier writes remain.
func (a *Adapter) Store(st *weather.Data) error {
	if err := a.storage.WriteBool(KeyDebugMode, st.Debug); err != nil {
		return fmt.Errorf("store %s: %w", KeyDebugMode, err)
	}
	if err := a.storage.WriteBool(KeyDisplayBattery, st.Battery); err != nil {
		return fmt.Errorf("store %s: %w", KeyDisplayBattery, err)
	}
	if err := a.storage.WriteString(KeyWeatherService, st.Provider.String()); err != nil {
		return fmt.Errorf("store %s: %w", KeyWeatherService, err)
	}
	if err := a.storage.WriteString(KeyWeatherScale, st.Scale.String()); err != nil {
		return fmt.Errorf("store %s: %w", KeyWeatherScale, err)
	}

	a.logger.Debug("persist store",
		"debug", st.Debug,
		"battery", st.Battery,
		"provider", st.Provider.String(),
		"scale", st.Scale.String())
	return nil
}

// LoadWeatherValues would restore the last weather snapshot so a request
// can be deferred. It is not implemented and always fails.
func (a *Adapter) LoadWeatherValues(st *weather.Data) error {
	return fmt.Errorf("load %s: %w", KeyWeatherValues, linkerrors.ErrNotImplemented)
}

// StoreWeatherValues would save the current conditions and hourly forecast.
// It is not implemented and always fails.
func (a *Adapter) StoreWeatherValues(st *weather.Data) error {
	return fmt.Errorf("store %s: %w", KeyWeatherValues, linkerrors.ErrNotImplemented)
}

func (a *Adapter) loadBool(key Key, def bool, errs *[]error) bool {
	ok, err := a.storage.Exists(key)
	if err != nil {
		a.logger.Warn("persist exists failed", "key", key.String(), "error", err)
		*errs = append(*errs, fmt.Errorf("load %s: %w", key, err))
		return def
	}
	if !ok {
		return def
	}
	v, err := a.storage.ReadBool(key)
	if err != nil {
		a.logger.Warn("persist read failed", "key", key.String(), "error", err)
		*errs = append(*errs, fmt.Errorf("load %s: %w", key, err))
		return def
	}
	return v
}

func (a *Adapter) loadString(key Key, errs *[]error) (string, bool) {
	ok, err := a.storage.Exists(key)
	if err != nil {
		a.logger.Warn("persist exists failed", "key", key.String(), "error", err)
		*errs = append(*errs, fmt.Errorf("load %s: %w", key, err))
		return "", false
	}
	if !ok {
		return "", false
	}
	v, err := a.storage.ReadString(key)
	if err != nil {
		a.logger.Warn("persist read failed", "key", key.String(), "error", err)
		*errs = append(*errs, fmt.Errorf("load %s: %w", key, err))
		return "", false
	}
	return v, true
}
