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

package weather

import "time"

// Defaults applied when a persisted setting is absent.
const (
	DefaultDebug    = false
	DefaultBattery  = true
	DefaultProvider = ProviderYahoo
	DefaultScale    = ScaleFahrenheit
)

// HourlySlots is the number of hourly forecast entries carried by the face.
const HourlySlots = 2

// HourlySlot is one hourly forecast entry.
type HourlySlot struct {
	Temp int32 `json:"temp"`
	Cond int32 `json:"cond"`
	Time int64 `json:"time"`
	Pop  int32 `json:"pop"`
}

// Data is the watch face state. It is mutated in place and lives until
// process exit.
type Data struct {
	// Current conditions, in provider units.
	Temperature int32               `json:"temperature"`
	Condition   int32               `json:"condition"`
	Sunrise     int64               `json:"sunrise"`
	Sunset      int64               `json:"sunset"`
	PubDate     Bounded[PubDateLen] `json:"pub_date"`
	Locale      Bounded[LocaleLen]  `json:"locale"`
	TZOffset    int32               `json:"tz_offset"`
	Updated     time.Time           `json:"updated"`
	Status      Status              `json:"status"`
	JSReady     bool                `json:"js_ready"`

	Hourly        [HourlySlots]HourlySlot `json:"hourly"`
	HourlyEnabled bool                    `json:"hourly_enabled"`
	HourlyUpdated time.Time               `json:"hourly_updated"`

	// Configuration mirrored to durable storage.
	Provider Provider `json:"provider"`
	Battery  bool     `json:"battery"`
	Debug    bool     `json:"debug"`
	Scale    Scale    `json:"scale"`
}

// New returns state initialized with the default configuration.
func New() *Data {
	return &Data{
		Provider: DefaultProvider,
		Battery:  DefaultBattery,
		Debug:    DefaultDebug,
		Scale:    DefaultScale,
	}
}

// Reset clears link status ahead of opening the message channel. Weather
// values and configuration are left as they are.
func (d *Data) Reset() {
	d.Status = StatusOK
	d.Updated = time.Time{}
	d.JSReady = false
	d.HourlyUpdated = time.Time{}
	d.HourlyEnabled = false
}

// IsDaytime reports whether now falls between sunrise and sunset. Without
// sun times it reports true.
func (d *Data) IsDaytime(now time.Time) bool {
	if d.Sunrise == 0 || d.Sunset == 0 {
		return true
	}
	ts := now.Unix()
	return ts >= d.Sunrise && ts < d.Sunset
}
