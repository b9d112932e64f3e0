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

// Provider identifies the weather service the phone queries. The zero value
// is the fallback provider.
type Provider uint8

const (
	ProviderYahoo Provider = iota
	ProviderOpenWeather
)

const (
	providerYahooName       = "yahoo"
	providerOpenWeatherName = "open"
)

// ParseProvider coerces s to a canonical provider: "open" selects
// OpenWeatherMap and anything else falls back to Yahoo.
func ParseProvider(s string) Provider {
	if s == providerOpenWeatherName {
		return ProviderOpenWeather
	}
	return ProviderYahoo
}

func (p Provider) String() string {
	if p == ProviderOpenWeather {
		return providerOpenWeatherName
	}
	return providerYahooName
}

// MarshalText implements encoding.TextMarshaler.
func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names coerce.
func (p *Provider) UnmarshalText(text []byte) error {
	*p = ParseProvider(string(text))
	return nil
}

// Scale is the temperature scale requested from the phone. The zero value
// is the fallback scale.
type Scale uint8

const (
	ScaleFahrenheit Scale = iota
	ScaleCelsius
)

const (
	scaleFahrenheitName = "F"
	scaleCelsiusName    = "C"
)

// ParseScale coerces s to a canonical scale: "C" selects Celsius and
// anything else falls back to Fahrenheit.
func ParseScale(s string) Scale {
	if s == scaleCelsiusName {
		return ScaleCelsius
	}
	return ScaleFahrenheit
}

func (s Scale) String() string {
	if s == ScaleCelsius {
		return scaleCelsiusName
	}
	return scaleFahrenheitName
}

// MarshalText implements encoding.TextMarshaler.
func (s Scale) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names coerce.
func (s *Scale) UnmarshalText(text []byte) error {
	*s = ParseScale(string(text))
	return nil
}

// Status is the single error field shown by the rendering layer.
type Status uint8

const (
	// StatusOK means the last current-weather or ready message was processed.
	StatusOK Status = iota
	// StatusNetwork means the phone reported an explicit error text.
	StatusNetwork
	// StatusDisconnected means there was no link to the phone.
	StatusDisconnected
	// StatusPhone means unexpected inbound content or an ambiguous delivery failure.
	StatusPhone
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNetwork:
		return "network"
	case StatusDisconnected:
		return "disconnected"
	case StatusPhone:
		return "phone"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
