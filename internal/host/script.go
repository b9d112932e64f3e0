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

package host

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/sirseerhq/weather-link/internal/appmsg"
	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

// Event types understood in replay scripts.
const (
	EventInbox        = "inbox"
	EventInboxDropped = "inbox_dropped"
	EventOutboxSent   = "outbox_sent"
	EventOutboxFailed = "outbox_failed"
	EventRequest      = "request"
	EventConnection   = "connection"
)

// Event is one line of a replay script, for example:
//
//	{"event":"inbox","message":{"temperature":72,"locale":"Austin"}}
//	{"event":"inbox","raw":"0100000000030400480000"}
//	{"event":"outbox_failed","reason":"APP_MSG_SEND_TIMEOUT"}
//	{"event":"connection","connected":false}
type Event struct {
	Type      string            `json:"event"`
	Message   appmsg.Dictionary `json:"message,omitempty"`
	Raw       string            `json:"raw,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	Connected *bool             `json:"connected,omitempty"`
	Begin     string            `json:"begin,omitempty"`
	Send      string            `json:"send,omitempty"`
}

// ParseEvent decodes and checks one script line.
func ParseEvent(line []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(line, &ev); err != nil {
		return Event{}, fmt.Errorf("%w: %v", linkerrors.ErrMalformedMessage, err)
	}

	switch ev.Type {
	case EventInbox:
		if ev.Raw != "" {
			if _, err := hex.DecodeString(ev.Raw); err != nil {
				return Event{}, fmt.Errorf("%w: raw is not hex: %v", linkerrors.ErrMalformedMessage, err)
			}
		}
	case EventInboxDropped, EventOutboxFailed:
		if _, err := ev.result(ev.Reason); err != nil {
			return Event{}, err
		}
	case EventConnection:
		for _, name := range []string{ev.Begin, ev.Send} {
			if _, err := ev.result(name); err != nil {
				return Event{}, err
			}
		}
	case EventOutboxSent, EventRequest:
	default:
		return Event{}, fmt.Errorf("%w: unknown event %q", linkerrors.ErrMalformedMessage, ev.Type)
	}
	return ev, nil
}

// result parses a result name. An empty name means APP_MSG_OK.
func (ev Event) result(name string) (appmsg.Result, error) {
	if name == "" {
		return appmsg.ResultOK, nil
	}
	r, ok := appmsg.ParseResult(name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown result %q in %s event", linkerrors.ErrMalformedMessage, name, ev.Type)
	}
	return r, nil
}

// RawBytes returns the decoded raw payload of an inbox event.
func (ev Event) RawBytes() []byte {
	b, _ := hex.DecodeString(ev.Raw)
	return b
}

// OpenScript opens a replay script. "-" reads standard input; names ending
// in .gz or .zst are decompressed.
func OpenScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open gzip script: %w", err)
		}
		return &stackedCloser{Reader: gz, closers: []io.Closer{gz, file}}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to open zstd script: %w", err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), file}}, nil
	default:
		return file, nil
	}
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
