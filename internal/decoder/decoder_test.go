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

package decoder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/weather-link/internal/appmsg"
	"github.com/sirseerhq/weather-link/internal/weather"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// recorder captures display, renderer and retry calls in order.
type recorder struct {
	events []string
}

func (r *recorder) EnableBattery()               { r.events = append(r.events, "battery on") }
func (r *recorder) DisableBattery()              { r.events = append(r.events, "battery off") }
func (r *recorder) EnableDebug()                 { r.events = append(r.events, "debug on") }
func (r *recorder) DisableDebug()                { r.events = append(r.events, "debug off") }
func (r *recorder) DebugWeather(_ *weather.Data) { r.events = append(r.events, "debug weather") }
func (r *recorder) DebugMessage(msg string)      { r.events = append(r.events, "debug message "+msg) }
func (r *recorder) Refresh(_ *weather.Data)      { r.events = append(r.events, "refresh") }
func (r *recorder) ResetRetries()                { r.events = append(r.events, "reset retries") }

type mockSettings struct {
	mock.Mock
}

func (m *mockSettings) Store(st *weather.Data) error {
	args := m.Called(st)
	return args.Error(0)
}

type fixture struct {
	rec      *recorder
	settings *mockSettings
	ready    int
	dec      *Decoder
}

func newFixture() *fixture {
	f := &fixture{rec: &recorder{}, settings: &mockSettings{}}
	f.dec = New(Options{
		Displays: f.rec,
		Renderer: f.rec,
		Settings: f.settings,
		Retries:  f.rec,
		OnReady:  func() { f.ready++ },
		Now:      func() time.Time { return fixedNow },
	})
	return f
}

func TestReceive_CurrentWeather(t *testing.T) {
	f := newFixture()
	st := weather.New()
	st.Status = weather.StatusNetwork

	msg := appmsg.Dictionary{}.
		Add(appmsg.KeyTemperature, appmsg.Int32(72)).
		Add(appmsg.KeyCondition, appmsg.Int32(32)).
		Add(appmsg.KeySunrise, appmsg.Int32(1700000000)).
		Add(appmsg.KeySunset, appmsg.Int32(1700040000)).
		Add(appmsg.KeyPubDate, appmsg.CString("10:45")).
		Add(appmsg.KeyLocale, appmsg.CString("Austin")).
		Add(appmsg.KeyTZOffset, appmsg.Int32(-300))

	kind := f.dec.Receive(msg, st)

	assert.Equal(t, KindCurrent, kind)
	assert.Equal(t, int32(72), st.Temperature)
	assert.Equal(t, int32(32), st.Condition)
	assert.Equal(t, int64(1700000000), st.Sunrise)
	assert.Equal(t, int64(1700040000), st.Sunset)
	assert.Equal(t, "10:45", st.PubDate.String())
	assert.Equal(t, "Austin", st.Locale.String())
	assert.Equal(t, int32(-300), st.TZOffset)
	assert.Equal(t, weather.StatusOK, st.Status)
	assert.Equal(t, fixedNow, st.Updated)
	assert.Equal(t, []string{"refresh", "reset retries"}, f.rec.events)
	f.settings.AssertNotCalled(t, "Store", mock.Anything)
}

func TestReceive_CurrentWeatherPushesDebugOverlay(t *testing.T) {
	f := newFixture()
	st := weather.New()
	st.Debug = true

	kind := f.dec.Receive(appmsg.Dictionary{}.Add(appmsg.KeyTemperature, appmsg.Int32(10)), st)

	assert.Equal(t, KindCurrent, kind)
	assert.Equal(t, []string{"debug on", "debug weather", "refresh", "reset retries"}, f.rec.events)
}

func TestReceive_TruncatesBoundedStrings(t *testing.T) {
	f := newFixture()
	st := weather.New()

	msg := appmsg.Dictionary{}.Add(appmsg.KeyPubDate, appmsg.CString("10:45 PM CDT"))
	require.Equal(t, KindCurrent, f.dec.Receive(msg, st))
	assert.Equal(t, "10:45", st.PubDate.String())
}

func TestReceive_Hourly(t *testing.T) {
	f := newFixture()
	st := weather.New()

	msg := appmsg.Dictionary{}.
		Add(appmsg.KeyH1Temp, appmsg.Int32(70)).
		Add(appmsg.KeyH1Cond, appmsg.Int32(800)).
		Add(appmsg.KeyH1Time, appmsg.Int32(1700003600)).
		Add(appmsg.KeyH1Pop, appmsg.Int32(10)).
		Add(appmsg.KeyH2Temp, appmsg.Int32(68)).
		Add(appmsg.KeyH2Cond, appmsg.Int32(500)).
		Add(appmsg.KeyH2Time, appmsg.Int32(1700007200)).
		Add(appmsg.KeyH2Pop, appmsg.Int32(60))

	kind := f.dec.Receive(msg, st)

	assert.Equal(t, KindHourly, kind)
	assert.Equal(t, weather.HourlySlot{Temp: 70, Cond: 800, Time: 1700003600, Pop: 10}, st.Hourly[0])
	assert.Equal(t, weather.HourlySlot{Temp: 68, Cond: 500, Time: 1700007200, Pop: 60}, st.Hourly[1])
	assert.True(t, st.HourlyEnabled)
	assert.Equal(t, fixedNow, st.HourlyUpdated)
	assert.True(t, st.Updated.IsZero(), "hourly data must not stamp current weather")
}

func TestReceive_Config(t *testing.T) {
	f := newFixture()
	st := weather.New()
	f.settings.On("Store", st).Return(nil).Once()

	msg := appmsg.Dictionary{}.
		Add(appmsg.KeyService, appmsg.CString("open")).
		Add(appmsg.KeyScale, appmsg.CString("C")).
		Add(appmsg.KeyDebug, appmsg.Bool(true)).
		Add(appmsg.KeyBattery, appmsg.Bool(false)).
		Add(appmsg.KeyHourlyEnabled, appmsg.Bool(true))

	kind := f.dec.Receive(msg, st)

	assert.Equal(t, KindConfig, kind)
	assert.Equal(t, weather.ProviderOpenWeather, st.Provider)
	assert.Equal(t, weather.ScaleCelsius, st.Scale)
	assert.True(t, st.Debug)
	assert.False(t, st.Battery)
	assert.True(t, st.HourlyEnabled)
	assert.Equal(t, fixedNow, st.HourlyUpdated)
	assert.Equal(t, []string{
		"battery off",
		"debug on",
		"debug weather",
		"refresh",
		"reset retries",
	}, f.rec.events)
	f.settings.AssertExpectations(t)
}

func TestReceive_ConfigCoercesUnknownValues(t *testing.T) {
	tests := []struct {
		name         string
		service      string
		scale        string
		wantProvider weather.Provider
		wantScale    weather.Scale
	}{
		{"canonical", "open", "C", weather.ProviderOpenWeather, weather.ScaleCelsius},
		{"fallback", "darksky", "K", weather.ProviderYahoo, weather.ScaleFahrenheit},
		{"case sensitive", "OPEN", "c", weather.ProviderYahoo, weather.ScaleFahrenheit},
		{"empty", "", "", weather.ProviderYahoo, weather.ScaleFahrenheit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			st := weather.New()
			st.Provider = weather.ProviderOpenWeather
			st.Scale = weather.ScaleCelsius
			f.settings.On("Store", st).Return(nil)

			msg := appmsg.Dictionary{}.
				Add(appmsg.KeyService, appmsg.CString(tt.service)).
				Add(appmsg.KeyScale, appmsg.CString(tt.scale))
			require.Equal(t, KindConfig, f.dec.Receive(msg, st))

			assert.Equal(t, tt.wantProvider, st.Provider)
			assert.Equal(t, tt.wantScale, st.Scale)
		})
	}
}

func TestReceive_ConfigStoreFailureKeepsState(t *testing.T) {
	f := newFixture()
	st := weather.New()
	f.settings.On("Store", st).Return(errors.New("disk full"))

	msg := appmsg.Dictionary{}.Add(appmsg.KeyBattery, appmsg.Bool(false))
	kind := f.dec.Receive(msg, st)

	assert.Equal(t, KindConfig, kind)
	assert.False(t, st.Battery)
	assert.Equal(t, weather.StatusOK, st.Status)
	assert.Equal(t, []string{"battery off", "debug off", "refresh", "reset retries"}, f.rec.events)
}

func TestReceive_JSReady(t *testing.T) {
	f := newFixture()
	st := weather.New()
	st.Status = weather.StatusDisconnected

	kind := f.dec.Receive(appmsg.Dictionary{}.Add(appmsg.KeyJSReady, appmsg.Bool(true)), st)

	assert.Equal(t, KindControl, kind)
	assert.True(t, st.JSReady)
	assert.Equal(t, weather.StatusOK, st.Status)
	assert.Equal(t, 1, f.ready)
	assert.Equal(t, []string{"debug message JS ready", "refresh", "reset retries"}, f.rec.events)
}

func TestReceive_ControlMessages(t *testing.T) {
	tests := []struct {
		name       string
		msg        appmsg.Dictionary
		wantStatus weather.Status
		wantReady  int
	}{
		{
			name:       "error text",
			msg:        appmsg.Dictionary{}.Add(appmsg.KeyError, appmsg.CString("timeout")),
			wantStatus: weather.StatusNetwork,
		},
		{
			name:       "unknown key",
			msg:        appmsg.Dictionary{}.Add(appmsg.Key(99), appmsg.Int32(1)),
			wantStatus: weather.StatusPhone,
		},
		{
			name: "ready then error",
			msg: appmsg.Dictionary{}.
				Add(appmsg.KeyJSReady, appmsg.Bool(true)).
				Add(appmsg.KeyError, appmsg.CString("no location")),
			wantStatus: weather.StatusNetwork,
			wantReady:  1,
		},
		{
			name: "error then ready",
			msg: appmsg.Dictionary{}.
				Add(appmsg.KeyError, appmsg.CString("no location")).
				Add(appmsg.KeyJSReady, appmsg.Bool(true)),
			wantStatus: weather.StatusOK,
			wantReady:  1,
		},
		{
			name:       "empty message",
			msg:        appmsg.Dictionary{},
			wantStatus: weather.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			st := weather.New()

			kind := f.dec.Receive(tt.msg, st)

			assert.Equal(t, KindControl, kind)
			assert.Equal(t, tt.wantStatus, st.Status)
			assert.Equal(t, tt.wantReady, f.ready)
			assert.Equal(t, []string{"refresh", "reset retries"}, f.rec.events[len(f.rec.events)-2:])
		})
	}
}

func TestReceive_MixedKindsFallThroughToControl(t *testing.T) {
	f := newFixture()
	st := weather.New()
	before := *st

	msg := appmsg.Dictionary{}.
		Add(appmsg.KeyTemperature, appmsg.Int32(99)).
		Add(appmsg.KeyH1Temp, appmsg.Int32(50))

	kind := f.dec.Receive(msg, st)

	assert.Equal(t, KindControl, kind)
	// Nothing from the partial match is applied.
	assert.Equal(t, before.Temperature, st.Temperature)
	assert.Equal(t, before.Hourly, st.Hourly)
	assert.Equal(t, weather.StatusPhone, st.Status)
}

func TestReceive_WrongValueTypeIsNotStructured(t *testing.T) {
	tests := []struct {
		name string
		msg  appmsg.Dictionary
	}{
		{"text temperature", appmsg.Dictionary{}.Add(appmsg.KeyTemperature, appmsg.CString("72"))},
		{"integer locale", appmsg.Dictionary{}.Add(appmsg.KeyLocale, appmsg.Int32(1))},
		{"integer service", appmsg.Dictionary{}.Add(appmsg.KeyService, appmsg.Int32(1))},
		{"bytes hourly", appmsg.Dictionary{}.Add(appmsg.KeyH1Pop, appmsg.Bytes([]byte{1}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			st := weather.New()

			assert.Equal(t, KindControl, f.dec.Receive(tt.msg, st))
			assert.Equal(t, int32(0), st.Temperature)
			assert.Equal(t, weather.ProviderYahoo, st.Provider)
			f.settings.AssertNotCalled(t, "Store", mock.Anything)
		})
	}
}

func TestReceive_NarrowIntegersWiden(t *testing.T) {
	f := newFixture()
	st := weather.New()

	kind := f.dec.Receive(appmsg.Dictionary{}.Add(appmsg.KeyCondition, appmsg.Uint8(200)), st)

	assert.Equal(t, KindCurrent, kind)
	assert.Equal(t, int32(200), st.Condition)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "current", KindCurrent.String())
	assert.Equal(t, "hourly", KindHourly.String())
	assert.Equal(t, "config", KindConfig.String())
	assert.Equal(t, "control", KindControl.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
