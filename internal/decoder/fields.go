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
	"time"

	"github.com/sirseerhq/weather-link/internal/appmsg"
	"github.com/sirseerhq/weather-link/internal/weather"
)

// field describes how one key of a structured message is checked and applied.
type field struct {
	text  bool
	apply func(st *weather.Data, v appmsg.Value, now time.Time)
}

func intField(set func(st *weather.Data, n int32)) field {
	return field{apply: func(st *weather.Data, v appmsg.Value, _ time.Time) {
		n, _ := v.AsInt32()
		set(st, n)
	}}
}

func boolField(set func(st *weather.Data, b bool, now time.Time)) field {
	return field{apply: func(st *weather.Data, v appmsg.Value, now time.Time) {
		b, _ := v.AsBool()
		set(st, b, now)
	}}
}

func textField(set func(st *weather.Data, s string)) field {
	return field{text: true, apply: func(st *weather.Data, v appmsg.Value, _ time.Time) {
		s, _ := v.AsString()
		set(st, s)
	}}
}

type fieldSet map[appmsg.Key]field

var currentFields = fieldSet{
	appmsg.KeyTemperature: intField(func(st *weather.Data, n int32) { st.Temperature = n }),
	appmsg.KeyCondition:   intField(func(st *weather.Data, n int32) { st.Condition = n }),
	appmsg.KeySunrise:     intField(func(st *weather.Data, n int32) { st.Sunrise = int64(n) }),
	appmsg.KeySunset:      intField(func(st *weather.Data, n int32) { st.Sunset = int64(n) }),
	appmsg.KeyPubDate:     textField(func(st *weather.Data, s string) { st.PubDate.Set(s) }),
	appmsg.KeyLocale:      textField(func(st *weather.Data, s string) { st.Locale.Set(s) }),
	appmsg.KeyTZOffset:    intField(func(st *weather.Data, n int32) { st.TZOffset = n }),
}

var hourlyFields = fieldSet{
	appmsg.KeyH1Temp: intField(func(st *weather.Data, n int32) { st.Hourly[0].Temp = n }),
	appmsg.KeyH1Cond: intField(func(st *weather.Data, n int32) { st.Hourly[0].Cond = n }),
	appmsg.KeyH1Time: intField(func(st *weather.Data, n int32) { st.Hourly[0].Time = int64(n) }),
	appmsg.KeyH1Pop:  intField(func(st *weather.Data, n int32) { st.Hourly[0].Pop = n }),
	appmsg.KeyH2Temp: intField(func(st *weather.Data, n int32) { st.Hourly[1].Temp = n }),
	appmsg.KeyH2Cond: intField(func(st *weather.Data, n int32) { st.Hourly[1].Cond = n }),
	appmsg.KeyH2Time: intField(func(st *weather.Data, n int32) { st.Hourly[1].Time = int64(n) }),
	appmsg.KeyH2Pop:  intField(func(st *weather.Data, n int32) { st.Hourly[1].Pop = n }),
}

var configFields = fieldSet{
	appmsg.KeyService: textField(func(st *weather.Data, s string) { st.Provider = weather.ParseProvider(s) }),
	appmsg.KeyScale:   textField(func(st *weather.Data, s string) { st.Scale = weather.ParseScale(s) }),
	appmsg.KeyDebug:   boolField(func(st *weather.Data, b bool, _ time.Time) { st.Debug = b }),
	appmsg.KeyBattery: boolField(func(st *weather.Data, b bool, _ time.Time) { st.Battery = b }),
	appmsg.KeyHourlyEnabled: boolField(func(st *weather.Data, b bool, now time.Time) {
		st.HourlyEnabled = b
		st.HourlyUpdated = now
	}),
}

// matches reports whether every tuple of msg is a field of fs with the
// right value type. An empty message matches nothing.
func (fs fieldSet) matches(msg appmsg.Dictionary) bool {
	if len(msg) == 0 {
		return false
	}
	for _, t := range msg {
		f, ok := fs[t.Key]
		if !ok {
			return false
		}
		if f.text {
			if t.Value.Type() != appmsg.TypeCString {
				return false
			}
		} else if !t.Value.IsInteger() {
			return false
		}
	}
	return true
}

// apply writes every tuple of msg in order. Call only after matches.
func (fs fieldSet) apply(msg appmsg.Dictionary, st *weather.Data, now time.Time) {
	for _, t := range msg {
		fs[t.Key].apply(st, t.Value, now)
	}
}
