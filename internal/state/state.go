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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
	"github.com/sirseerhq/weather-link/internal/persist"
)

// DefaultPath returns the standard settings file location:
// ~/.weather-link/settings.state
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory is not accessible
		homeDir = "."
	}
	return filepath.Join(homeDir, ".weather-link", "settings.state")
}

// SaveState atomically writes the settings to disk with a fresh checksum.
func SaveState(state *SettingsState, stateFile string) error {
	state.Version = CurrentVersion

	checksum, err := calculateChecksum(state)
	if err != nil {
		return fmt.Errorf("failed to calculate checksum: %w", err)
	}
	state.Checksum = checksum

	stateDir := filepath.Dir(stateFile)
	if mkdirErr := os.MkdirAll(stateDir, 0o755); mkdirErr != nil {
		return fmt.Errorf("failed to create state directory: %w: %w", linkerrors.ErrStorageUnavailable, mkdirErr)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tempFile := stateFile + ".tmp"
	if writeErr := os.WriteFile(tempFile, data, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write temporary state file: %w: %w", linkerrors.ErrStorageUnavailable, writeErr)
	}

	// Sync to ensure data is flushed to disk
	file, err := os.Open(tempFile)
	if err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to open temp file for sync: %w: %w", linkerrors.ErrStorageUnavailable, err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to sync temp file: %w: %w", linkerrors.ErrStorageUnavailable, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to close temp file: %w: %w", linkerrors.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tempFile, stateFile); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w: %w", linkerrors.ErrStorageUnavailable, err)
	}

	return nil
}

// LoadState reads and validates the settings file. A missing file is
// reported with an error wrapping fs.ErrNotExist.
func LoadState(stateFile string) (*SettingsState, error) {
	data, err := os.ReadFile(stateFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no settings found at %s: %w", stateFile, err)
		}
		return nil, fmt.Errorf("failed to read state file %s: %w: %w", stateFile, linkerrors.ErrStorageUnavailable, err)
	}

	var state SettingsState
	if unmarshalErr := json.Unmarshal(data, &state); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", linkerrors.ErrStateCorrupted, unmarshalErr)
	}

	if state.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: version %d is incompatible with current version %d",
			linkerrors.ErrStateCorrupted, state.Version, CurrentVersion)
	}

	savedChecksum := state.Checksum
	state.Checksum = ""

	calculatedChecksum, err := calculateChecksum(&state)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate checksum for validation: %w", err)
	}

	if savedChecksum != calculatedChecksum {
		return nil, fmt.Errorf("%w: checksum mismatch", linkerrors.ErrStateCorrupted)
	}

	state.Checksum = savedChecksum
	if state.Entries == nil {
		state.Entries = make(map[persist.Key]persist.Entry)
	}

	return &state, nil
}

// DeleteState removes the settings file. Removing a missing file is not
// an error.
func DeleteState(stateFile string) error {
	err := os.Remove(stateFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete state file: %w: %w", linkerrors.ErrStorageUnavailable, err)
	}
	return nil
}

// calculateChecksum computes the SHA256 hash of the state content.
// The checksum field itself is excluded from the calculation.
func calculateChecksum(state *SettingsState) (string, error) {
	stateCopy := *state
	stateCopy.Checksum = ""

	// Map keys are sorted by encoding/json, so the hash is stable.
	data, err := json.Marshal(stateCopy)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// FileStorage is a persist.Storage backed by one settings file. It is safe
// for concurrent use; writes are serialized through one lock.
type FileStorage struct {
	mu    sync.Mutex
	path  string
	state *SettingsState
	now   func() time.Time
}

// OpenFileStorage loads the settings file at path. A missing file yields
// an empty store; a corrupted one is an error wrapping ErrStateCorrupted.
func OpenFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{path: path, now: time.Now}

	loaded, err := LoadState(path)
	switch {
	case err == nil:
		s.state = loaded
	case errors.Is(err, fs.ErrNotExist):
		s.state = &SettingsState{Version: CurrentVersion, Entries: make(map[persist.Key]persist.Entry)}
	default:
		return nil, err
	}
	return s, nil
}

// Path returns the settings file location.
func (s *FileStorage) Path() string { return s.path }

func (s *FileStorage) Exists(key persist.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.state.Entries[key]
	return ok, nil
}

func (s *FileStorage) ReadBool(key persist.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.state.Entries[key]
	if !ok {
		return false, fmt.Errorf("key %s not found in %s", key, s.path)
	}
	return e.AsBool(key)
}

func (s *FileStorage) ReadString(key persist.Key) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.state.Entries[key]
	if !ok {
		return "", fmt.Errorf("key %s not found in %s", key, s.path)
	}
	return e.AsString(key)
}

func (s *FileStorage) WriteBool(key persist.Key, v bool) error {
	return s.put(key, persist.Entry{Kind: persist.KindBool, Bool: v})
}

func (s *FileStorage) WriteString(key persist.Key, v string) error {
	return s.put(key, persist.Entry{Kind: persist.KindString, String: v})
}

func (s *FileStorage) Delete(key persist.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.state.Entries[key]
	if !ok {
		return nil
	}
	delete(s.state.Entries, key)
	if err := s.flush(); err != nil {
		s.state.Entries[key] = prev
		return err
	}
	return nil
}

// Reset removes the settings file and empties the store.
func (s *FileStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := DeleteState(s.path); err != nil {
		return err
	}
	s.state = &SettingsState{Version: CurrentVersion, Entries: make(map[persist.Key]persist.Entry)}
	return nil
}

// put writes one entry. The in-memory copy only changes when the file
// write succeeds.
func (s *FileStorage) put(key persist.Key, e persist.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.state.Entries[key]
	s.state.Entries[key] = e
	if err := s.flush(); err != nil {
		if had {
			s.state.Entries[key] = prev
		} else {
			delete(s.state.Entries, key)
		}
		return err
	}
	return nil
}

// flush must be called with s.mu held.
func (s *FileStorage) flush() error {
	s.state.UpdatedAt = s.now().UTC()
	return SaveState(s.state, s.path)
}
