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

package appmsg

import (
	"fmt"
	"strconv"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

// Key identifies a tuple. Key numbers are shared with the phone and must
// not be renumbered.
type Key uint32

// Current weather keys.
const (
	KeyTemperature Key = 0
	KeyCondition   Key = 1
	KeySunrise     Key = 2
	KeySunset      Key = 3
	KeyPubDate     Key = 4
	KeyLocale      Key = 5
	KeyTZOffset    Key = 6
)

// Configuration keys. Service, scale, debug and battery are also the
// fields of the outbound weather request.
const (
	KeyService       Key = 7
	KeyScale         Key = 8
	KeyDebug         Key = 9
	KeyBattery       Key = 10
	KeyHourlyEnabled Key = 21
)

// Control keys.
const (
	KeyError   Key = 11
	KeyJSReady Key = 12
)

// Hourly forecast keys, two slots of four fields.
const (
	KeyH1Temp Key = 13
	KeyH1Cond Key = 14
	KeyH1Time Key = 15
	KeyH1Pop  Key = 16
	KeyH2Temp Key = 17
	KeyH2Cond Key = 18
	KeyH2Time Key = 19
	KeyH2Pop  Key = 20
)

var keyNames = map[Key]string{
	KeyTemperature:   "temperature",
	KeyCondition:     "condition",
	KeySunrise:       "sunrise",
	KeySunset:        "sunset",
	KeyPubDate:       "pubdate",
	KeyLocale:        "locale",
	KeyTZOffset:      "tzoffset",
	KeyService:       "service",
	KeyScale:         "scale",
	KeyDebug:         "debug",
	KeyBattery:       "battery",
	KeyError:         "error",
	KeyJSReady:       "js_ready",
	KeyH1Temp:        "h1_temp",
	KeyH1Cond:        "h1_cond",
	KeyH1Time:        "h1_time",
	KeyH1Pop:         "h1_pop",
	KeyH2Temp:        "h2_temp",
	KeyH2Cond:        "h2_cond",
	KeyH2Time:        "h2_time",
	KeyH2Pop:         "h2_pop",
	KeyHourlyEnabled: "hourly_enabled",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// String returns the protocol name of k, or its number when k is not a
// known key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return strconv.FormatUint(uint64(k), 10)
}

// Known reports whether k is part of the protocol.
func (k Key) Known() bool {
	_, ok := keyNames[k]
	return ok
}

// ParseKey resolves a protocol name or a decimal key number. Numbers are
// accepted even when unknown so that unexpected keys can be replayed.
func ParseKey(s string) (Key, error) {
	if k, ok := keysByName[s]; ok {
		return k, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, linkerrors.ErrUnknownKey)
	}
	return Key(n), nil
}
