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

// Package persist mirrors the watch face configuration to durable per-key
// storage and restores it, with defaults, on start-up.
package persist

import (
	"fmt"
	"strconv"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

// Key identifies one durable entry.
type Key uint32

// Persisted keys. Each is read and written independently.
const (
	KeyDebugMode      Key = 1
	KeyDisplayBattery Key = 2
	KeyWeatherService Key = 3
	KeyWeatherScale   Key = 4

	// Reserved for the fast-resume snapshot; nothing reads or writes them yet.
	KeyWeatherValues Key = 5
	KeyHourlyValues  Key = 6
)

func (k Key) String() string {
	switch k {
	case KeyDebugMode:
		return "debug_mode"
	case KeyDisplayBattery:
		return "display_battery"
	case KeyWeatherService:
		return "weather_service"
	case KeyWeatherScale:
		return "weather_scale"
	case KeyWeatherValues:
		return "weather_values"
	case KeyHourlyValues:
		return "hourly_values"
	default:
		return strconv.FormatUint(uint64(k), 10)
	}
}

// Storage is durable per-key storage. Implementations must report an absent
// key through Exists rather than by failing a read.
type Storage interface {
	Exists(key Key) (bool, error)
	ReadBool(key Key) (bool, error)
	ReadString(key Key) (string, error)
	WriteBool(key Key, v bool) error
	WriteString(key Key, v string) error
	Delete(key Key) error
}

// Kind is the type of a stored entry.
type Kind string

const (
	KindBool   Kind = "bool"
	KindString Kind = "string"
)

// Entry is one stored value. Backends that keep a typed record per key
// share it.
type Entry struct {
	Kind   Kind   `json:"kind"`
	Bool   bool   `json:"bool,omitempty"`
	String string `json:"string,omitempty"`
}

// AsBool returns the boolean held by e.
func (e Entry) AsBool(key Key) (bool, error) {
	if e.Kind != KindBool {
		return false, fmt.Errorf("key %s holds a %s, not a bool: %w", key, e.Kind, linkerrors.ErrStateCorrupted)
	}
	return e.Bool, nil
}

// AsString returns the string held by e.
func (e Entry) AsString(key Key) (string, error) {
	if e.Kind != KindString {
		return "", fmt.Errorf("key %s holds a %s, not a string: %w", key, e.Kind, linkerrors.ErrStateCorrupted)
	}
	return e.String, nil
}

// MemoryStorage keeps entries in process memory. It is what tests and the
// "memory" storage backend use.
type MemoryStorage struct {
	entries map[Key]Entry
}

// NewMemoryStorage returns an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[Key]Entry)}
}

func (m *MemoryStorage) Exists(key Key) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}

func (m *MemoryStorage) ReadBool(key Key) (bool, error) {
	e, ok := m.entries[key]
	if !ok {
		return false, fmt.Errorf("key %s not found", key)
	}
	return e.AsBool(key)
}

func (m *MemoryStorage) ReadString(key Key) (string, error) {
	e, ok := m.entries[key]
	if !ok {
		return "", fmt.Errorf("key %s not found", key)
	}
	return e.AsString(key)
}

func (m *MemoryStorage) WriteBool(key Key, v bool) error {
	m.entries[key] = Entry{Kind: KindBool, Bool: v}
	return nil
}

func (m *MemoryStorage) WriteString(key Key, v string) error {
	m.entries[key] = Entry{Kind: KindString, String: v}
	return nil
}

func (m *MemoryStorage) Delete(key Key) error {
	delete(m.entries, key)
	return nil
}
