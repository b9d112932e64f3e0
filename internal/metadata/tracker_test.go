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

package metadata

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func steppingClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}

func TestTracker_Counters(t *testing.T) {
	tracker := New()

	tracker.RecordInbound("current")
	tracker.RecordInbound("current")
	tracker.RecordInbound("control")
	tracker.RecordDropped()
	tracker.RecordRequest(true)
	tracker.RecordRequest(false)
	tracker.RecordRequest(true)
	tracker.RecordSent()
	tracker.RecordFailure("APP_MSG_SEND_TIMEOUT")
	tracker.RecordFailure("APP_MSG_SEND_TIMEOUT")
	tracker.RecordFailure("APP_MSG_NOT_CONNECTED")
	tracker.RecordExhausted()

	r := tracker.results
	if r.Inbound["current"] != 2 || r.Inbound["control"] != 1 {
		t.Errorf("Inbound = %v, want current:2 control:1", r.Inbound)
	}
	if r.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", r.Dropped)
	}
	if r.Requests != 3 {
		t.Errorf("Requests = %d, want 3", r.Requests)
	}
	if r.RequestsRefused != 1 {
		t.Errorf("RequestsRefused = %d, want 1", r.RequestsRefused)
	}
	if r.Sent != 1 {
		t.Errorf("Sent = %d, want 1", r.Sent)
	}
	if r.Failures["APP_MSG_SEND_TIMEOUT"] != 2 || r.Failures["APP_MSG_NOT_CONNECTED"] != 1 {
		t.Errorf("Failures = %v", r.Failures)
	}
	if r.Exhausted != 1 {
		t.Errorf("Exhausted = %d, want 1", r.Exhausted)
	}
}

func TestTracker_GenerateMetadata(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	tracker := newWithClock(steppingClock(start, 90*time.Second))
	tracker.RecordInbound("hourly")

	params := SessionParams{StorageBackend: "file", MaxRetries: 2, InboxSize: 1200, OutboxSize: 500}
	previous := &SessionRef{SessionID: "earlier", CompletedAt: start.Add(-time.Hour)}

	meta := tracker.GenerateMetadata("1.0.0", "abc", params, previous)

	if meta.LinkVersion != "1.0.0" {
		t.Errorf("LinkVersion = %q, want %q", meta.LinkVersion, "1.0.0")
	}
	if meta.SessionID != "abc" {
		t.Errorf("SessionID = %q, want %q", meta.SessionID, "abc")
	}
	if meta.Parameters != params {
		t.Errorf("Parameters = %+v, want %+v", meta.Parameters, params)
	}
	if meta.Previous != previous {
		t.Errorf("Previous = %+v, want %+v", meta.Previous, previous)
	}
	if !meta.Results.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, want %v", meta.Results.StartedAt, start)
	}
	if meta.Results.Duration != "1m30s" {
		t.Errorf("Duration = %q, want %q", meta.Results.Duration, "1m30s")
	}

	// The record is a snapshot; later traffic does not leak into it.
	tracker.RecordInbound("hourly")
	if meta.Results.Inbound["hourly"] != 1 {
		t.Errorf("Inbound[hourly] = %d after further recording, want 1", meta.Results.Inbound["hourly"])
	}

	ref := meta.Ref()
	if ref.SessionID != "abc" || !ref.CompletedAt.Equal(meta.Results.CompletedAt) {
		t.Errorf("Ref() = %+v", ref)
	}
}

func TestSaveAndLoadMetadata(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")

	tracker := newWithClock(steppingClock(time.Unix(1700000000, 0).UTC(), time.Second))
	tracker.RecordSent()
	meta := tracker.GenerateMetadata("dev", "s1", SessionParams{StorageBackend: "memory"}, nil)

	path, err := SaveMetadata(meta, dir)
	if err != nil {
		t.Fatalf("SaveMetadata() error = %v", err)
	}
	if filepath.Base(path) != "session-1700000000.json" {
		t.Errorf("SaveMetadata() path = %q", path)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind")
	}

	loaded, err := LoadLatestMetadata(dir)
	if err != nil {
		t.Fatalf("LoadLatestMetadata() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadLatestMetadata() returned nil")
	}
	if loaded.SessionID != "s1" {
		t.Errorf("SessionID = %q, want %q", loaded.SessionID, "s1")
	}
	if loaded.Results.Sent != 1 {
		t.Errorf("Sent = %d, want 1", loaded.Results.Sent)
	}
}

func TestLoadLatestMetadata_Empty(t *testing.T) {
	loaded, err := LoadLatestMetadata(t.TempDir())
	if err != nil {
		t.Fatalf("LoadLatestMetadata() error = %v", err)
	}
	if loaded != nil {
		t.Errorf("LoadLatestMetadata() = %+v, want nil", loaded)
	}
}

func TestLoadLatestMetadata_PicksNewest(t *testing.T) {
	dir := t.TempDir()

	for i, id := range []string{"old", "new"} {
		tracker := newWithClock(steppingClock(time.Unix(int64(1700000000+i*100), 0), time.Second))
		path, err := SaveMetadata(tracker.GenerateMetadata("dev", id, SessionParams{}, nil), dir)
		if err != nil {
			t.Fatalf("SaveMetadata(%s) error = %v", id, err)
		}
		mtime := time.Unix(int64(1700000000+i*100), 0)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("Chtimes() error = %v", err)
		}
	}

	loaded, err := LoadLatestMetadata(dir)
	if err != nil {
		t.Fatalf("LoadLatestMetadata() error = %v", err)
	}
	if loaded.SessionID != "new" {
		t.Errorf("SessionID = %q, want %q", loaded.SessionID, "new")
	}
}

func TestLoadLatestMetadata_Corrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session-1.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadLatestMetadata(dir)
	if err == nil || !strings.Contains(err.Error(), "failed to parse metadata") {
		t.Errorf("LoadLatestMetadata() error = %v, want parse failure", err)
	}
}

func TestWriteMetadataToWriter(t *testing.T) {
	meta := New().GenerateMetadata("dev", "s1", SessionParams{MaxRetries: 2}, nil)

	var buf bytes.Buffer
	if err := WriteMetadataToWriter(meta, &buf); err != nil {
		t.Fatalf("WriteMetadataToWriter() error = %v", err)
	}

	if !strings.Contains(buf.String(), "\n  \"session_id\": \"s1\"") {
		t.Errorf("output is not indented JSON: %s", buf.String())
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["previous_session"]; ok {
		t.Error("previous_session should be omitted when nil")
	}
}
