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

// Package decoder classifies inbound phone messages and applies them to the
// watch face state.
//
// Every message is interpreted as exactly one kind, tried in a fixed order:
// current weather, hourly forecast, configuration, and finally control.
// A structured kind matches only when every key of the message belongs to
// it and carries the expected value type; nothing is written to the state
// until the whole message has matched. Messages that match no structured
// kind are handled key by key as control messages (error text and the
// phone-side ready signal), and any other key marks the state with a phone
// error.
//
// Whatever the outcome, the renderer is refreshed and the outbound retry
// counter is reset: inbound traffic of any kind shows the transport path is
// healthy. The decoder performs no I/O of its own.
package decoder
