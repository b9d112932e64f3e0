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

// Package main implements the weather-link command-line interface.
// It drives the watch face data-exchange layer against a scripted host
// and inspects the message format and the persisted settings.
//
// The CLI supports:
//   - Replaying a host event script against a link (replay)
//   - Decoding and encoding binary message dictionaries (decode, encode)
//   - Printing the outbound weather request for the stored settings (request)
//   - Showing, changing and resetting stored settings (settings)
//   - Resolving weather condition codes to icons (icon)
//
// Usage:
//
//	weather-link replay session.ndjson [flags]
//
// Example:
//
//	weather-link replay session.ndjson.gz --rate 10 --metadata ./sessions
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration or storage error
//   - 3: Message format error
package main
