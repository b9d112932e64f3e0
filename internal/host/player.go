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
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/sirseerhq/weather-link/internal/link"
)

const maxScriptLine = 64 * 1024

// PlayerOptions configure a Player.
type PlayerOptions struct {
	// Rate limits replay to this many events per second. Zero replays as
	// fast as possible.
	Rate   float64
	Logger *slog.Logger
}

// Player feeds a replay script into a link, one event at a time, the way
// the host would deliver callbacks.
type Player struct {
	link      *link.Link
	transport *Transport
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewPlayer creates a player for l. transport must be the transport l was
// built with so delivery events can refer to the last sent message.
func NewPlayer(l *link.Link, transport *Transport, opts PlayerOptions) *Player {
	p := &Player{
		link:      l,
		transport: transport,
		logger:    opts.Logger,
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if opts.Rate > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}
	return p
}

// Play reads events from r until EOF and applies them. Blank lines and
// lines starting with # are skipped. It returns the number of events
// applied; a malformed line stops the replay.
func (p *Player) Play(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxScriptLine)

	applied := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		ev, err := ParseEvent(line)
		if err != nil {
			return applied, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return applied, err
			}
		} else if err := ctx.Err(); err != nil {
			return applied, err
		}

		p.Apply(ev)
		applied++
	}
	if err := scanner.Err(); err != nil {
		return applied, fmt.Errorf("failed to read script: %w", err)
	}
	return applied, nil
}

// Apply delivers one event. ParseEvent has already checked it.
func (p *Player) Apply(ev Event) {
	p.logger.Debug("replay event", "event", ev.Type)

	switch ev.Type {
	case EventInbox:
		if ev.Raw != "" {
			if _, err := p.link.InboxReceivedBytes(ev.RawBytes()); err != nil {
				p.logger.Warn("inbound message dropped", "error", err)
			}
			return
		}
		p.link.InboxReceived(ev.Message)
	case EventInboxDropped:
		reason, _ := ev.result(ev.Reason)
		p.link.InboxDropped(reason)
	case EventOutboxSent:
		p.link.OutboxSent(p.transport.Last())
	case EventOutboxFailed:
		reason, _ := ev.result(ev.Reason)
		p.link.OutboxFailed(p.transport.Last(), reason)
	case EventRequest:
		if !p.link.Request() {
			p.logger.Info("request not submitted", "status", p.link.State().Status)
		}
	case EventConnection:
		if ev.Connected != nil {
			p.transport.SetConnected(*ev.Connected)
		}
		begin, _ := ev.result(ev.Begin)
		send, _ := ev.result(ev.Send)
		p.transport.SetResults(begin, send)
	}
}
