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
	"time"

	"github.com/sony/gobreaker/v2"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

// GuardSettings configure the circuit breaker of a Guarded store.
type GuardSettings struct {
	// MaxFailures is the number of consecutive write failures that opens
	// the breaker.
	MaxFailures uint32
	// Timeout is how long the breaker stays open before letting one write
	// through to probe the backend.
	Timeout time.Duration
}

// DefaultGuardSettings returns the guard used by the CLI.
func DefaultGuardSettings() GuardSettings {
	return GuardSettings{MaxFailures: 3, Timeout: 30 * time.Second}
}

// Guarded wraps a Storage so that a failing backend is not hit on every
// configuration message. Reads pass straight through.
type Guarded struct {
	Storage
	breaker *gobreaker.CircuitBreaker[struct{}]
}

// NewGuarded wraps storage in a circuit breaker.
func NewGuarded(storage Storage, settings GuardSettings) *Guarded {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = DefaultGuardSettings().MaxFailures
	}
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultGuardSettings().Timeout
	}

	return &Guarded{
		Storage: storage,
		breaker: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        "settings-storage",
			MaxRequests: 1,
			Timeout:     settings.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= settings.MaxFailures
			},
		}),
	}
}

func (g *Guarded) WriteBool(key Key, v bool) error {
	return g.guard(func() error { return g.Storage.WriteBool(key, v) })
}

func (g *Guarded) WriteString(key Key, v string) error {
	return g.guard(func() error { return g.Storage.WriteString(key, v) })
}

func (g *Guarded) Delete(key Key) error {
	return g.guard(func() error { return g.Storage.Delete(key) })
}

// Open reports whether the breaker is currently refusing writes.
func (g *Guarded) Open() bool {
	return g.breaker.State() == gobreaker.StateOpen
}

func (g *Guarded) guard(write func() error) error {
	_, err := g.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, write()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: writes suspended after repeated failures: %v", linkerrors.ErrStorageUnavailable, err)
	}
	return err
}
