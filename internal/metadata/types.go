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

// Package metadata types define the structures used for recording what
// happened on a link session. A session runs from the moment the message
// channel is opened until it is closed.
package metadata

import (
	"time"
)

// SessionMetadata is the complete record of one link session: how it was
// configured and the traffic it saw.
type SessionMetadata struct {
	LinkVersion string         `json:"link_version"`
	SessionID   string         `json:"session_id"`
	Parameters  SessionParams  `json:"parameters"`
	Results     SessionResults `json:"results"`
	Previous    *SessionRef    `json:"previous_session,omitempty"`
}

// SessionParams captures the settings the link was opened with.
type SessionParams struct {
	StorageBackend string `json:"storage_backend"`
	MaxRetries     int    `json:"max_retries"`
	InboxSize      int    `json:"inbox_size"`
	OutboxSize     int    `json:"outbox_size"`
}

// SessionResults holds the traffic counters for a session.
type SessionResults struct {
	Inbound         map[string]int `json:"inbound"`
	Dropped         int            `json:"inbound_dropped"`
	Requests        int            `json:"requests"`
	RequestsRefused int            `json:"requests_refused"`
	Sent            int            `json:"outbound_sent"`
	Failures        map[string]int `json:"outbound_failures"`
	Exhausted       int            `json:"retries_exhausted"`
	Duration        string         `json:"session_duration"`
	StartedAt       time.Time      `json:"started_at"`
	CompletedAt     time.Time      `json:"completed_at"`
}

// SessionRef points at an earlier session so consecutive runs can be
// chained.
type SessionRef struct {
	SessionID   string    `json:"session_id"`
	CompletedAt time.Time `json:"completed_at"`
}
