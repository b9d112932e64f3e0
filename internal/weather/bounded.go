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

import "unicode/utf8"

// Limit declares the maximum byte length of a Bounded string.
type Limit interface {
	MaxLen() int
}

// PubDateLen bounds the publish time shown on the face ("HH:MM").
type PubDateLen struct{}

// MaxLen implements Limit.
func (PubDateLen) MaxLen() int { return 5 }

// LocaleLen bounds the locale (neighborhood or city) name.
type LocaleLen struct{}

// MaxLen implements Limit.
func (LocaleLen) MaxLen() int { return 255 }

// Bounded is a string that never exceeds L's maximum length. Values longer
// than the limit are truncated on Set, at a rune boundary so the stored text
// is always valid UTF-8 when the input was.
type Bounded[L Limit] struct {
	s string
}

// Set assigns s, truncating it to the limit.
func (b *Bounded[L]) Set(s string) {
	b.s = truncate(s, b.Max())
}

// Max returns the maximum length in bytes.
func (b Bounded[L]) Max() int {
	var l L
	return l.MaxLen()
}

func (b Bounded[L]) String() string {
	return b.s
}

// MarshalText implements encoding.TextMarshaler.
func (b Bounded[L]) MarshalText() ([]byte, error) {
	return []byte(b.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and truncates like Set.
func (b *Bounded[L]) UnmarshalText(text []byte) error {
	b.Set(string(text))
	return nil
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
