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

// Package state provides atomic file persistence for the watch face
// settings.
//
// A settings file holds one typed entry per persisted key. Every write
// replaces the whole file through a write-to-temp, fsync and rename
// sequence, so a crash leaves either the previous file or the new one.
// Writes of different keys are still independent: storing four settings
// is four file replacements, and a crash between them leaves some keys
// updated and others not.
//
// Files carry a schema version and a SHA256 checksum of their content.
// A file that fails either check is reported as corrupted rather than
// silently replaced; `weather-link settings reset` removes it.
//
// Example usage:
//
//	store, err := state.OpenFileStorage(state.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	adapter := persist.NewAdapter(store, displays, logger)
package state
