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

// Package weather holds the long-lived watch face state that inbound
// messages and persisted settings are decoded into.
//
// A single Data value is owned by the application root and mutated in place
// by the decoder and the persistence adapter. Fields whose on-device storage
// is fixed-size use Bounded, which truncates on assignment, and the provider
// and temperature scale are enumerations that coerce unrecognized input to a
// canonical fallback.
package weather
