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
	"log/slog"
	"time"

	"github.com/sirseerhq/weather-link/internal/appmsg"
	"github.com/sirseerhq/weather-link/internal/weather"
)

// Kind is the category an inbound message was interpreted as.
type Kind int

const (
	KindCurrent Kind = iota + 1
	KindHourly
	KindConfig
	KindControl
)

func (k Kind) String() string {
	switch k {
	case KindCurrent:
		return "current"
	case KindHourly:
		return "hourly"
	case KindConfig:
		return "config"
	case KindControl:
		return "control"
	default:
		return "unknown"
	}
}

// Displays are the indicator layers the decoder switches.
type Displays interface {
	EnableBattery()
	DisableBattery()
	EnableDebug()
	DisableDebug()
	DebugWeather(st *weather.Data)
	DebugMessage(msg string)
}

// Renderer redraws the watch face from the state.
type Renderer interface {
	Refresh(st *weather.Data)
}

// SettingsStore persists the configuration subset of the state.
type SettingsStore interface {
	Store(st *weather.Data) error
}

// RetryResetter clears the outbound retry counter.
type RetryResetter interface {
	ResetRetries()
}

// Options are the collaborators of a Decoder. Displays, Renderer, Settings
// and Retries are required.
type Options struct {
	Displays Displays
	Renderer Renderer
	Settings SettingsStore
	Retries  RetryResetter

	// OnReady is called each time the phone reports it is ready.
	OnReady func()
	// Now defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Decoder applies inbound messages to the state. It is not safe for
// concurrent use; the host delivers messages one at a time.
type Decoder struct {
	displays Displays
	renderer Renderer
	settings SettingsStore
	retries  RetryResetter
	onReady  func()
	now      func() time.Time
	logger   *slog.Logger
}

// New creates a decoder.
func New(opts Options) *Decoder {
	d := &Decoder{
		displays: opts.Displays,
		renderer: opts.Renderer,
		settings: opts.Settings,
		retries:  opts.Retries,
		onReady:  opts.OnReady,
		now:      opts.Now,
		logger:   opts.Logger,
	}
	if d.onReady == nil {
		d.onReady = func() {}
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Receive interprets msg, applies it to st and returns the kind it was
// handled as. The renderer is refreshed and the retry counter reset after
// every message, including ones that only reported an error.
func (d *Decoder) Receive(msg appmsg.Dictionary, st *weather.Data) Kind {
	kind := d.dispatch(msg, st)
	d.logger.Debug("inbound message", "kind", kind, "tuples", len(msg))

	d.renderer.Refresh(st)
	d.retries.ResetRetries()
	return kind
}

func (d *Decoder) dispatch(msg appmsg.Dictionary, st *weather.Data) Kind {
	now := d.now()

	switch {
	case currentFields.matches(msg):
		currentFields.apply(msg, st, now)
		d.finishCurrent(st, now)
		return KindCurrent
	case hourlyFields.matches(msg):
		hourlyFields.apply(msg, st, now)
		st.HourlyEnabled = true
		st.HourlyUpdated = now
		return KindHourly
	case configFields.matches(msg):
		configFields.apply(msg, st, now)
		d.finishConfig(st)
		return KindConfig
	default:
		d.control(msg, st)
		return KindControl
	}
}

func (d *Decoder) finishCurrent(st *weather.Data, now time.Time) {
	st.Status = weather.StatusOK
	st.Updated = now

	if st.Debug {
		d.displays.EnableDebug()
		d.displays.DebugWeather(st)
	}

	d.logger.Debug("weather",
		"temp", st.Temperature,
		"cond", st.Condition,
		"pub_date", st.PubDate.String(),
		"tz_offset", st.TZOffset,
		"locale", st.Locale.String())
}

func (d *Decoder) finishConfig(st *weather.Data) {
	d.logger.Debug("configuration",
		"service", st.Provider,
		"scale", st.Scale,
		"debug", st.Debug,
		"battery", st.Battery)

	if st.Battery {
		d.displays.EnableBattery()
	} else {
		d.displays.DisableBattery()
	}

	if st.Debug {
		d.displays.EnableDebug()
		d.displays.DebugWeather(st)
	} else {
		d.displays.DisableDebug()
	}

	// The in-memory state stays authoritative when the write fails.
	if err := d.settings.Store(st); err != nil {
		d.logger.Warn("failed to persist configuration", "error", err)
	}
}

func (d *Decoder) control(msg appmsg.Dictionary, st *weather.Data) {
	for _, t := range msg {
		switch t.Key {
		case appmsg.KeyError:
			st.Status = weather.StatusNetwork
			text, _ := t.Value.AsString()
			d.logger.Debug("phone reported error", "error", text)
		case appmsg.KeyJSReady:
			st.JSReady = true
			st.Status = weather.StatusOK
			d.logger.Debug("javascript is ready")
			d.displays.DebugMessage("JS ready")
			d.onReady()
		default:
			st.Status = weather.StatusPhone
			d.logger.Debug("unknown key", "key", uint32(t.Key))
		}
	}
}
