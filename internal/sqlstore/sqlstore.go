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

// Package sqlstore keeps the watch face settings in a SQLite database using
// the pure Go modernc.org/sqlite driver. Each persisted key is one row.
package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
	"github.com/sirseerhq/weather-link/internal/persist"
)

const schema = `CREATE TABLE IF NOT EXISTS settings (
	key          INTEGER PRIMARY KEY,
	kind         TEXT NOT NULL,
	bool_value   INTEGER,
	string_value TEXT,
	updated_at   TEXT NOT NULL
);`

// Storage implements persist.Storage on a settings table.
type Storage struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(path string, logger *slog.Logger) (*Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w: %w", path, linkerrors.ErrStorageUnavailable, err)
	}
	// One connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		logger.Warn("could not set WAL mode", "path", path, "error", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w: %w", linkerrors.ErrStorageUnavailable, err)
	}

	return &Storage{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Exists(key persist.Key) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM settings WHERE key = ?`, int64(key)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w: %w", key, linkerrors.ErrStorageUnavailable, err)
	}
	return n > 0, nil
}

func (s *Storage) ReadBool(key persist.Key) (bool, error) {
	e, err := s.read(key)
	if err != nil {
		return false, err
	}
	return e.AsBool(key)
}

func (s *Storage) ReadString(key persist.Key) (string, error) {
	e, err := s.read(key)
	if err != nil {
		return "", err
	}
	return e.AsString(key)
}

func (s *Storage) WriteBool(key persist.Key, v bool) error {
	return s.write(key, persist.Entry{Kind: persist.KindBool, Bool: v})
}

func (s *Storage) WriteString(key persist.Key, v string) error {
	return s.write(key, persist.Entry{Kind: persist.KindString, String: v})
}

func (s *Storage) Delete(key persist.Key) error {
	if _, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, int64(key)); err != nil {
		return fmt.Errorf("failed to delete %s: %w: %w", key, linkerrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Reset removes every stored setting.
func (s *Storage) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM settings`); err != nil {
		return fmt.Errorf("failed to clear settings: %w: %w", linkerrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Storage) read(key persist.Key) (persist.Entry, error) {
	var (
		kind string
		b    sql.NullInt64
		str  sql.NullString
	)
	err := s.db.QueryRow(`SELECT kind, bool_value, string_value FROM settings WHERE key = ?`, int64(key)).
		Scan(&kind, &b, &str)
	if errors.Is(err, sql.ErrNoRows) {
		return persist.Entry{}, fmt.Errorf("key %s not found", key)
	}
	if err != nil {
		return persist.Entry{}, fmt.Errorf("failed to read %s: %w: %w", key, linkerrors.ErrStorageUnavailable, err)
	}

	return persist.Entry{
		Kind:   persist.Kind(kind),
		Bool:   b.Valid && b.Int64 != 0,
		String: str.String,
	}, nil
}

func (s *Storage) write(key persist.Key, e persist.Entry) error {
	var (
		b   sql.NullInt64
		str sql.NullString
	)
	switch e.Kind {
	case persist.KindBool:
		b = sql.NullInt64{Valid: true}
		if e.Bool {
			b.Int64 = 1
		}
	case persist.KindString:
		str = sql.NullString{String: e.String, Valid: true}
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings(key, kind, bool_value, string_value, updated_at) VALUES(?,?,?,?,?)`,
		int64(key), string(e.Kind), b, str, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w: %w", key, linkerrors.ErrStorageUnavailable, err)
	}
	return nil
}
