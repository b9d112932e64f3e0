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

// Package appmsg models the key/value dictionaries exchanged between the
// watch and its paired phone.
//
// A Dictionary is an ordered list of tuples keyed by small integers. Values
// are typed as a 32-bit signed integer, an unsigned byte or a short
// NUL-terminated string. Dictionaries can be carried in the host's binary
// wire format (Encode, Decode) or as JSON objects whose member order is
// preserved, which is what replay scripts and the CLI use.
package appmsg
