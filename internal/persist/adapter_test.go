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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
	"github.com/sirseerhq/weather-link/internal/weather"
)

type mockDisplays struct {
	mock.Mock
}

func (m *mockDisplays) EnableBattery()          { m.Called() }
func (m *mockDisplays) DisableBattery()         { m.Called() }
func (m *mockDisplays) EnableDebug()            { m.Called() }
func (m *mockDisplays) DisableDebug()           { m.Called() }
func (m *mockDisplays) DebugMessage(msg string) { m.Called(msg) }

// journal records storage and display calls in one sequence.
type journal struct {
	*MemoryStorage
	events  []string
	failOn  Key
	failErr error
}

func newJournal() *journal {
	return &journal{MemoryStorage: NewMemoryStorage()}
}

func (j *journal) Exists(key Key) (bool, error) {
	j.events = append(j.events, "exists "+key.String())
	return j.MemoryStorage.Exists(key)
}

func (j *journal) WriteBool(key Key, v bool) error {
	j.events = append(j.events, "write "+key.String())
	if key == j.failOn {
		return j.failErr
	}
	return j.MemoryStorage.WriteBool(key, v)
}

func (j *journal) WriteString(key Key, v string) error {
	j.events = append(j.events, "write "+key.String())
	if key == j.failOn {
		return j.failErr
	}
	return j.MemoryStorage.WriteString(key, v)
}

func (j *journal) EnableBattery()          { j.events = append(j.events, "battery on") }
func (j *journal) DisableBattery()         { j.events = append(j.events, "battery off") }
func (j *journal) EnableDebug()            { j.events = append(j.events, "debug on") }
func (j *journal) DisableDebug()           { j.events = append(j.events, "debug off") }
func (j *journal) DebugMessage(msg string) { j.events = append(j.events, "debug message "+msg) }

func TestLoad_Defaults(t *testing.T) {
	displays := &mockDisplays{}
	displays.On("DisableDebug").Return().Once()
	displays.On("EnableBattery").Return().Once()

	st := &weather.Data{}
	adapter := NewAdapter(NewMemoryStorage(), displays, nil)
	require.NoError(t, adapter.Load(st))

	assert.Equal(t, weather.DefaultDebug, st.Debug)
	assert.Equal(t, weather.DefaultBattery, st.Battery)
	assert.Equal(t, weather.ProviderYahoo, st.Provider)
	assert.Equal(t, weather.ScaleFahrenheit, st.Scale)
	displays.AssertExpectations(t)
}

func TestLoad_DebugEnabledShowsInitializing(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.WriteBool(KeyDebugMode, true))
	require.NoError(t, storage.WriteBool(KeyDisplayBattery, false))

	displays := &mockDisplays{}
	displays.On("EnableDebug").Return().Once()
	displays.On("DebugMessage", "Initializing...").Return().Once()
	displays.On("DisableBattery").Return().Once()

	st := &weather.Data{}
	require.NoError(t, NewAdapter(storage, displays, nil).Load(st))

	assert.True(t, st.Debug)
	assert.False(t, st.Battery)
	displays.AssertExpectations(t)
}

func TestLoad_InterleavesDisplaySideEffects(t *testing.T) {
	j := newJournal()
	st := &weather.Data{}
	require.NoError(t, NewAdapter(j, j, nil).Load(st))

	assert.Equal(t, []string{
		"exists debug_mode",
		"debug off",
		"exists display_battery",
		"battery on",
		"exists weather_service",
		"exists weather_scale",
	}, j.events)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		battery  bool
		provider weather.Provider
		scale    weather.Scale
	}{
		{"defaults", false, true, weather.ProviderYahoo, weather.ScaleFahrenheit},
		{"all flipped", true, false, weather.ProviderOpenWeather, weather.ScaleCelsius},
		{"open fahrenheit", false, false, weather.ProviderOpenWeather, weather.ScaleFahrenheit},
		{"yahoo celsius debug", true, true, weather.ProviderYahoo, weather.ScaleCelsius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := NewMemoryStorage()
			j := newJournal()

			in := &weather.Data{Debug: tt.debug, Battery: tt.battery, Provider: tt.provider, Scale: tt.scale}
			require.NoError(t, NewAdapter(storage, j, nil).Store(in))

			out := &weather.Data{}
			require.NoError(t, NewAdapter(storage, j, nil).Load(out))

			assert.Equal(t, tt.debug, out.Debug)
			assert.Equal(t, tt.battery, out.Battery)
			assert.Equal(t, tt.provider, out.Provider)
			assert.Equal(t, tt.scale, out.Scale)
		})
	}
}

func TestLoad_CoercesStoredStrings(t *testing.T) {
	tests := []struct {
		provider string
		scale    string
		wantP    weather.Provider
		wantS    weather.Scale
	}{
		{"open", "C", weather.ProviderOpenWeather, weather.ScaleCelsius},
		{"yahoo", "F", weather.ProviderYahoo, weather.ScaleFahrenheit},
		{"wunder", "K", weather.ProviderYahoo, weather.ScaleFahrenheit},
		{"", "", weather.ProviderYahoo, weather.ScaleFahrenheit},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%q", tt.provider, tt.scale), func(t *testing.T) {
			storage := NewMemoryStorage()
			require.NoError(t, storage.WriteString(KeyWeatherService, tt.provider))
			require.NoError(t, storage.WriteString(KeyWeatherScale, tt.scale))

			st := &weather.Data{}
			require.NoError(t, NewAdapter(storage, newJournal(), nil).Load(st))
			assert.Equal(t, tt.wantP, st.Provider)
			assert.Equal(t, tt.wantS, st.Scale)
		})
	}
}

func TestStore_WritesCanonicalValues(t *testing.T) {
	storage := NewMemoryStorage()
	st := &weather.Data{Provider: weather.ParseProvider("OpenWeatherMap"), Scale: weather.ParseScale("kelvin")}
	require.NoError(t, NewAdapter(storage, newJournal(), nil).Store(st))

	provider, err := storage.ReadString(KeyWeatherService)
	require.NoError(t, err)
	assert.Equal(t, "yahoo", provider)

	scale, err := storage.ReadString(KeyWeatherScale)
	require.NoError(t, err)
	assert.Equal(t, "F", scale)
}

func TestStore_PartialWriteOnFailure(t *testing.T) {
	j := newJournal()
	j.failOn = KeyWeatherService
	j.failErr = errors.New("flash full")

	st := &weather.Data{Debug: true, Battery: false, Provider: weather.ProviderOpenWeather, Scale: weather.ScaleCelsius}
	err := NewAdapter(j, j, nil).Store(st)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather_service")

	debug, err := j.ReadBool(KeyDebugMode)
	require.NoError(t, err)
	assert.True(t, debug)

	ok, _ := j.MemoryStorage.Exists(KeyWeatherScale)
	assert.False(t, ok, "writes after the failure must not happen")
}

func TestLoad_TypeMismatchFallsBack(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.WriteString(KeyDisplayBattery, "yes"))

	st := &weather.Data{}
	err := NewAdapter(storage, newJournal(), nil).Load(st)
	require.Error(t, err)
	assert.True(t, errors.Is(err, linkerrors.ErrStateCorrupted))
	assert.Equal(t, weather.DefaultBattery, st.Battery)
}

func TestWeatherValuesNotImplemented(t *testing.T) {
	adapter := NewAdapter(NewMemoryStorage(), newJournal(), nil)
	st := weather.New()

	assert.True(t, errors.Is(adapter.LoadWeatherValues(st), linkerrors.ErrNotImplemented))
	assert.True(t, errors.Is(adapter.StoreWeatherValues(st), linkerrors.ErrNotImplemented))
}
