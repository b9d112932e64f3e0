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

// Package host simulates the device side of the message channel: a
// transport with a connection flag, scripted inbound and delivery events,
// and console stand-ins for the battery indicator, debug overlay and
// weather display.
package host

import (
	"log/slog"

	"github.com/sirseerhq/weather-link/internal/appmsg"
)

// Transport is a scripted outbound channel. It records every dictionary
// handed to Send.
type Transport struct {
	connected bool
	begin     appmsg.Result
	send      appmsg.Result
	sent      []appmsg.Dictionary
	logger    *slog.Logger
}

// NewTransport returns a transport that accepts every message.
func NewTransport(connected bool, logger *slog.Logger) *Transport {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{connected: connected, logger: logger}
}

func (t *Transport) Connected() bool { return t.connected }

func (t *Transport) Begin() appmsg.Result { return t.begin }

func (t *Transport) Send(msg appmsg.Dictionary) appmsg.Result {
	if t.send == appmsg.ResultOK {
		t.sent = append(t.sent, msg)
		t.logger.Debug("outbox", "message", msg)
	}
	return t.send
}

// SetConnected changes the connection flag.
func (t *Transport) SetConnected(connected bool) { t.connected = connected }

// SetResults makes Begin and Send return the given results from now on.
func (t *Transport) SetResults(begin, send appmsg.Result) {
	t.begin = begin
	t.send = send
}

// Sent returns every accepted outbound message in order.
func (t *Transport) Sent() []appmsg.Dictionary { return t.sent }

// Last returns the most recent accepted message, or nil.
func (t *Transport) Last() appmsg.Dictionary {
	if len(t.sent) == 0 {
		return nil
	}
	return t.sent[len(t.sent)-1]
}
