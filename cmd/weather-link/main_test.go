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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

// runCLI executes the root command in an isolated home and working
// directory so no user config or .env file leaks in.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, env := range os.Environ() {
		if name, _, _ := strings.Cut(env, "="); strings.HasPrefix(name, "WEATHER_LINK_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	chdir(t, home)

	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("boom"), 1},
		{linkerrors.ErrNotImplemented, 1},
		{fmt.Errorf("load: %w", linkerrors.ErrInvalidConfig), 2},
		{fmt.Errorf("write: %w", linkerrors.ErrStorageUnavailable), 2},
		{linkerrors.ErrStateCorrupted, 2},
		{fmt.Errorf("decode: %w", linkerrors.ErrMalformedMessage), 3},
		{linkerrors.ErrMessageTooLarge, 3},
		{linkerrors.ErrUnknownKey, 3},
	}

	for _, tt := range tests {
		if got := mapErrorToExitCode(tt.err); got != tt.want {
			t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	hexOut, _, err := runCLI(t, "encode", `{"temperature":-4,"locale":"Oslo","js_ready":true}`)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	jsonOut, _, err := runCLI(t, "decode", strings.TrimSpace(hexOut))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := `{"temperature":-4,"locale":"Oslo","js_ready":1}`
	if got := strings.TrimSpace(jsonOut); got != want {
		t.Errorf("decode = %s, want %s", got, want)
	}
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown key", []string{"encode", `{"wind":3}`}, 3},
		{"not an object", []string{"encode", `[1,2]`}, 3},
		{"over limit", []string{"encode", "--limit", "4", `{"temperature":1}`}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := mapErrorToExitCode(err); got != tt.code {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	for _, input := range []string{"zz", "0102"} {
		_, _, err := runCLI(t, "decode", input)
		if !errors.Is(err, linkerrors.ErrMalformedMessage) {
			t.Errorf("decode %q: err = %v, want ErrMalformedMessage", input, err)
		}
	}
}

func TestParseHex(t *testing.T) {
	got, err := parseHex(" 0x01 02\nff ")
	if err != nil {
		t.Fatalf("parseHex: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 0xff}) {
		t.Errorf("parseHex = %x", got)
	}
}

func TestSettingsLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.state")
	storage := []string{"--backend", "file", "--storage-path", path}

	out, _, err := runCLI(t, append([]string{"settings", "show"}, storage...)...)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var view map[string]any
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("show output: %v", err)
	}
	if view["provider"] != "yahoo" || view["scale"] != "F" || view["battery"] != true || view["debug"] != false {
		t.Errorf("defaults = %v", view)
	}

	_, _, err = runCLI(t, append([]string{"settings", "set", "--provider", "bogus", "--scale", "C", "--battery=false"}, storage...)...)
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	out, _, err = runCLI(t, append([]string{"request"}, storage...)...)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var req struct {
		Message map[string]any `json:"message"`
		Hex     string         `json:"hex"`
		Size    int            `json:"size"`
	}
	if err := json.Unmarshal([]byte(out), &req); err != nil {
		t.Fatalf("request output: %v", err)
	}
	// The unknown provider was coerced, never stored raw.
	if req.Message["service"] != "yahoo" || req.Message["scale"] != "C" || req.Message["battery"] != float64(0) {
		t.Errorf("request message = %v", req.Message)
	}
	if req.Size == 0 || len(req.Hex) != 2*req.Size {
		t.Errorf("request hex = %q, size %d", req.Hex, req.Size)
	}

	if _, _, err := runCLI(t, append([]string{"settings", "reset"}, storage...)...); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("settings file still present after reset: %v", err)
	}
}

func TestSettings_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "settings.db")
	storage := []string{"--backend", "sqlite", "--storage-path", path}

	if _, _, err := runCLI(t, append([]string{"settings", "set", "--provider", "open", "--debug"}, storage...)...); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, _, err := runCLI(t, append([]string{"settings", "show"}, storage...)...)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, `"provider": "open"`) || !strings.Contains(out, `"debug": true`) {
		t.Errorf("show = %s", out)
	}
}

func TestSettings_InvalidBackend(t *testing.T) {
	_, _, err := runCLI(t, "settings", "show", "--backend", "redis")
	if got := mapErrorToExitCode(err); got != 2 {
		t.Errorf("exit code = %d, want 2 (err: %v)", got, err)
	}
}

func TestSettings_CorruptedState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.state")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "settings", "show", "--backend", "file", "--storage-path", path)
	if !errors.Is(err, linkerrors.ErrStateCorrupted) {
		t.Errorf("err = %v, want ErrStateCorrupted", err)
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"icon", "32"}, "clear_day"},
		{[]string{"icon", "3200"}, "not_available"},
		{[]string{"icon", "--provider", "underground", "--", "-1"}, "not_available"},
		{[]string{"icon", "800", "--provider", "open", "--night"}, "clear_night"},
	}

	for _, tt := range tests {
		out, _, err := runCLI(t, tt.args...)
		if err != nil {
			t.Errorf("%v: %v", tt.args, err)
			continue
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}

	if _, _, err := runCLI(t, "icon", "1", "--provider", "metoffice"); err == nil {
		t.Error("expected error for unknown provider")
	}
	if _, _, err := runCLI(t, "icon", "sunny"); err == nil {
		t.Error("expected error for non-numeric code")
	}
}

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "session.ndjson")
	lines := strings.Join([]string{
		`{"event":"request"}`,
		`{"event":"connection","connected":true}`,
		`{"event":"inbox","message":{"js_ready":true}}`,
		`{"event":"inbox","message":{"scale":"C","battery":false}}`,
	}, "\n")
	if err := os.WriteFile(script, []byte(lines), 0o600); err != nil {
		t.Fatal(err)
	}
	metaDir := filepath.Join(dir, "sessions")

	out, stderr, err := runCLI(t, "replay", script, "--disconnected", "--backend", "memory", "--metadata", metaDir)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	frames := strings.Split(strings.TrimSpace(out), "\n")
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2:\n%s", len(frames), out)
	}
	var last struct {
		Frame int `json:"frame"`
		State struct {
			JSReady bool   `json:"js_ready"`
			Scale   string `json:"scale"`
			Battery bool   `json:"battery"`
			Status  string `json:"status"`
		} `json:"state"`
	}
	if err := json.Unmarshal([]byte(frames[1]), &last); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if last.Frame != 2 || !last.State.JSReady || last.State.Scale != "C" || last.State.Battery {
		t.Errorf("last frame = %+v", last)
	}
	if !strings.Contains(stderr, "Replayed 4 events") {
		t.Errorf("stderr = %q", stderr)
	}

	matches, _ := filepath.Glob(filepath.Join(metaDir, "session-*.json"))
	if len(matches) != 1 {
		t.Errorf("metadata files = %v", matches)
	}
}

func TestReplay_MalformedScript(t *testing.T) {
	script := filepath.Join(t.TempDir(), "bad.ndjson")
	if err := os.WriteFile(script, []byte(`{"event":"teleport"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "replay", script, "--backend", "memory")
	if got := mapErrorToExitCode(err); got != 3 {
		t.Errorf("exit code = %d, want 3 (err: %v)", got, err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
