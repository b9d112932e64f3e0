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

package state

import (
	"time"

	"github.com/sirseerhq/weather-link/internal/persist"
)

// CurrentVersion is the current settings schema version.
// Increment this when making breaking changes to SettingsState.
const CurrentVersion = 1

// SettingsState is the on-disk form of the settings store.
type SettingsState struct {
	// Version indicates the schema version of this file.
	Version int `json:"version"`

	// Checksum is the SHA256 hash of the content with this field empty.
	Checksum string `json:"checksum"`

	// Entries holds one typed value per persisted key.
	Entries map[persist.Key]persist.Entry `json:"entries"`

	// UpdatedAt records the last write.
	UpdatedAt time.Time `json:"updated_at"`
}
