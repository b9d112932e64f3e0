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

// Package metadata provides functionality for tracking and persisting
// statistics about link sessions. It records how many inbound messages of
// each kind were applied, how many outbound requests were submitted, and
// how delivery failed.
//
// Metadata is saved as JSON files next to the settings state, so repeated
// replay runs leave a trail that external tools can compare.
package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Tracker collects statistics during a link session. Like the link itself
// it is driven from one callback thread and does no locking.
type Tracker struct {
	startTime time.Time
	now       func() time.Time
	results   SessionResults
}

// New creates a tracker whose session starts now.
func New() *Tracker {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Tracker {
	return &Tracker{
		startTime: now(),
		now:       now,
		results: SessionResults{
			Inbound:  make(map[string]int),
			Failures: make(map[string]int),
		},
	}
}

// RecordInbound counts an applied inbound message of the given kind.
func (t *Tracker) RecordInbound(kind string) {
	t.results.Inbound[kind]++
}

// RecordDropped counts an inbound message the host discarded.
func (t *Tracker) RecordDropped() {
	t.results.Dropped++
}

// RecordRequest counts a submission attempt and whether the transport took it.
func (t *Tracker) RecordRequest(submitted bool) {
	t.results.Requests++
	if !submitted {
		t.results.RequestsRefused++
	}
}

// RecordSent counts a delivery acknowledgement.
func (t *Tracker) RecordSent() {
	t.results.Sent++
}

// RecordFailure counts a delivery failure by reason.
func (t *Tracker) RecordFailure(reason string) {
	t.results.Failures[reason]++
}

// RecordExhausted counts a submission refused by the retry ceiling.
func (t *Tracker) RecordExhausted() {
	t.results.Exhausted++
}

// GenerateMetadata creates the session record. Counters are copied, so the
// tracker can keep recording afterwards.
func (t *Tracker) GenerateMetadata(linkVersion, sessionID string, params SessionParams, previous *SessionRef) *SessionMetadata {
	completedAt := t.now()

	results := t.results
	results.Inbound = copyCounts(t.results.Inbound)
	results.Failures = copyCounts(t.results.Failures)
	results.Duration = completedAt.Sub(t.startTime).String()
	results.StartedAt = t.startTime
	results.CompletedAt = completedAt

	return &SessionMetadata{
		LinkVersion: linkVersion,
		SessionID:   sessionID,
		Parameters:  params,
		Results:     results,
		Previous:    previous,
	}
}

// Ref returns a reference to this session for chaining.
func (m *SessionMetadata) Ref() *SessionRef {
	return &SessionRef{
		SessionID:   m.SessionID,
		CompletedAt: m.Results.CompletedAt,
	}
}

func copyCounts(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// SaveMetadata writes a session record into dir as
// session-{started unix}.json. The file is written to a temporary name and
// renamed into place.
func SaveMetadata(metadata *SessionMetadata, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create metadata directory: %w", err)
	}

	filename := fmt.Sprintf("session-%d.json", metadata.Results.StartedAt.Unix())
	path := filepath.Join(dir, filename)

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return "", fmt.Errorf("failed to create metadata file: %w", err)
	}

	if err := WriteMetadataToWriter(metadata, file); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return "", fmt.Errorf("failed to write metadata: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return "", fmt.Errorf("failed to close metadata file: %w", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		return "", fmt.Errorf("failed to save metadata file: %w", err)
	}

	return path, nil
}

// LoadLatestMetadata loads the most recently modified session record in
// dir. It returns nil when there is none.
func LoadLatestMetadata(dir string) (*SessionMetadata, error) {
	files, err := filepath.Glob(filepath.Join(dir, "session-*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata files: %w", err)
	}

	var latestFile string
	var latestTime time.Time
	for _, file := range files {
		info, statErr := os.Stat(file)
		if statErr != nil {
			continue
		}
		if latestFile == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = file
		}
	}

	if latestFile == "" {
		return nil, nil
	}

	file, err := os.Open(latestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata file: %w", err)
	}
	defer file.Close()

	var metadata SessionMetadata
	if err := json.NewDecoder(file).Decode(&metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	return &metadata, nil
}

// WriteMetadataToWriter writes metadata as indented JSON.
func WriteMetadataToWriter(metadata *SessionMetadata, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(metadata)
}
