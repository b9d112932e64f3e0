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

// Package icons maps provider condition and forecast codes to the fixed
// icon set drawn by the watch face.
package icons

import "github.com/sirseerhq/weather-link/internal/weather"

// Icon identifies one glyph of the weather icon font.
type Icon uint8

const (
	NotAvailable Icon = iota
	ClearDay
	ClearNight
	RainSleet
	SnowSleet
	RainSnow
	Drizzle
	Rain
	RainSun
	Snow
	HeavySnow
	Sleet
	Fog
	Wind
	Thunder
	ThunderSun
	Cold
	Hot
	Cloudy
	MostlyCloudyDay
	PartlyCloudyDay
	PartlyCloudyNight
	FairDay
	FairNight
)

var iconNames = [...]string{
	NotAvailable:      "not_available",
	ClearDay:          "clear_day",
	ClearNight:        "clear_night",
	RainSleet:         "rain_sleet",
	SnowSleet:         "snow_sleet",
	RainSnow:          "rain_snow",
	Drizzle:           "drizzle",
	Rain:              "rain",
	RainSun:           "rain_sun",
	Snow:              "snow",
	HeavySnow:         "heavy_snow",
	Sleet:             "sleet",
	Fog:               "fog",
	Wind:              "wind",
	Thunder:           "thunder",
	ThunderSun:        "thunder_sun",
	Cold:              "cold",
	Hot:               "hot",
	Cloudy:            "cloudy",
	MostlyCloudyDay:   "mostly_cloudy_day",
	PartlyCloudyDay:   "partly_cloudy_day",
	PartlyCloudyNight: "partly_cloudy_night",
	FairDay:           "fair_day",
	FairNight:         "fair_night",
}

func (i Icon) String() string {
	if int(i) < len(iconNames) {
		return iconNames[i]
	}
	return iconNames[NotAvailable]
}

// Valid reports whether i is a defined icon.
func (i Icon) Valid() bool {
	return int(i) < len(iconNames)
}

// Table maps a provider's numeric codes to icons, with separate day and
// night variants. Both variants always have the same length.
type Table struct {
	name  string
	day   []Icon
	night []Icon
}

// Name identifies the table.
func (t *Table) Name() string { return t.name }

// Len returns the number of codes covered; valid codes are [0, Len).
func (t *Table) Len() int { return len(t.day) }

// Lookup returns the icon for code. Codes outside the table resolve to
// NotAvailable.
func (t *Table) Lookup(code int, daytime bool) Icon {
	if code < 0 || code >= len(t.day) {
		return NotAvailable
	}
	if daytime {
		return t.day[code]
	}
	return t.night[code]
}

// ForCondition resolves a current-conditions code from the given provider.
func ForCondition(p weather.Provider, code int, daytime bool) Icon {
	if p == weather.ProviderOpenWeather {
		return openWeatherIcon(code, daytime)
	}
	return YahooConditions.Lookup(code, daytime)
}

// openWeatherIcon follows the OpenWeatherMap condition groups, which are
// ranges rather than a dense table.
func openWeatherIcon(code int, daytime bool) Icon {
	pick := func(day, night Icon) Icon {
		if daytime {
			return day
		}
		return night
	}

	switch {
	case code >= 200 && code < 300:
		if code >= 210 && code <= 221 {
			return pick(ThunderSun, Thunder)
		}
		return Thunder
	case code >= 300 && code < 400:
		return Drizzle
	case code >= 500 && code < 600:
		switch {
		case code == 511:
			return RainSleet
		case code >= 520:
			return pick(RainSun, Rain)
		default:
			return Rain
		}
	case code >= 600 && code < 700:
		switch {
		case code == 602 || code == 622:
			return HeavySnow
		case code == 611 || code == 612:
			return Sleet
		case code == 615 || code == 616:
			return RainSnow
		default:
			return Snow
		}
	case code >= 700 && code < 800:
		if code == 771 || code == 781 {
			return Wind
		}
		return Fog
	case code == 800:
		return pick(ClearDay, ClearNight)
	case code == 801:
		return pick(FairDay, FairNight)
	case code == 802:
		return pick(PartlyCloudyDay, PartlyCloudyNight)
	case code == 803:
		return pick(MostlyCloudyDay, Cloudy)
	case code == 804:
		return Cloudy
	case code == 900 || code == 901 || code == 902 || code == 905 || (code >= 957 && code <= 962):
		return Wind
	case code == 903:
		return Cold
	case code == 904:
		return Hot
	case code == 906:
		return Sleet
	case code >= 951 && code <= 956:
		return pick(ClearDay, ClearNight)
	default:
		return NotAvailable
	}
}
