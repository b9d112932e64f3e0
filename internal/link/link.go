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

// Package link binds the message decoder, the request controller and the
// settings store to one watch face state, and exposes the callback surface
// the host message channel drives.
//
// All callbacks are expected on a single logical thread. A Link holds no
// locks; hosts that deliver from several goroutines must serialize calls.
package link

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sirseerhq/weather-link/internal/appmsg"
	"github.com/sirseerhq/weather-link/internal/decoder"
	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
	"github.com/sirseerhq/weather-link/internal/metadata"
	"github.com/sirseerhq/weather-link/internal/persist"
	"github.com/sirseerhq/weather-link/internal/request"
	"github.com/sirseerhq/weather-link/internal/weather"
)

// Options configure a Link. Transport, Storage, Displays and Renderer are
// required.
type Options struct {
	Transport request.Transport
	Storage   persist.Storage
	Displays  decoder.Displays
	Renderer  decoder.Renderer

	// StorageName is recorded in session metadata.
	StorageName string
	MaxRetries  int
	InboxSize   int
	OutboxSize  int

	// OnReady is called each time the phone reports it is ready.
	OnReady func()
	Now     func() time.Time
	Logger  *slog.Logger
}

// Link is one session of the message channel.
type Link struct {
	id         string
	state      *weather.Data
	decoder    *decoder.Decoder
	controller *request.Controller
	settings   *persist.Adapter
	tracker    *metadata.Tracker
	params     metadata.SessionParams
	logger     *slog.Logger
	open       bool
}

// New creates a closed link over st. Call Open before delivering callbacks.
func New(st *weather.Data, opts Options) *Link {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = request.DefaultRetryConfig().MaxRetries
	}
	if opts.InboxSize <= 0 {
		opts.InboxSize = appmsg.DefaultInboxSize
	}
	if opts.OutboxSize <= 0 {
		opts.OutboxSize = appmsg.DefaultOutboxSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	id := uuid.NewString()
	logger := opts.Logger.With("session", id)
	tracker := metadata.New()

	controller := request.NewController(
		&limitedTransport{Transport: opts.Transport, size: opts.OutboxSize, logger: logger},
		&request.RetryConfig{MaxRetries: opts.MaxRetries, OnExhausted: tracker.RecordExhausted},
		logger,
	)
	settings := persist.NewAdapter(opts.Storage, opts.Displays, logger)

	return &Link{
		id:         id,
		state:      st,
		controller: controller,
		settings:   settings,
		tracker:    tracker,
		decoder: decoder.New(decoder.Options{
			Displays: opts.Displays,
			Renderer: opts.Renderer,
			Settings: settings,
			Retries:  controller,
			OnReady:  opts.OnReady,
			Now:      opts.Now,
			Logger:   logger,
		}),
		params: metadata.SessionParams{
			StorageBackend: opts.StorageName,
			MaxRetries:     opts.MaxRetries,
			InboxSize:      opts.InboxSize,
			OutboxSize:     opts.OutboxSize,
		},
		logger: logger,
	}
}

// Open resets the link status in the state, clears the retry counter and
// restores persisted settings. Settings that could not be read fall back to
// their defaults; the read errors are returned but the link is open either
// way.
func (l *Link) Open() error {
	l.state.Reset()
	l.controller.ResetRetries()
	l.open = true

	l.logger.Debug("link opened", "max_in", l.params.InboxSize, "max_out", l.params.OutboxSize)

	if err := l.settings.Load(l.state); err != nil {
		l.logger.Warn("some settings fell back to defaults", "error", err)
		return err
	}
	return nil
}

// Close stops the link. Callbacks delivered afterwards are ignored.
func (l *Link) Close() {
	l.open = false
	l.logger.Debug("link closed")
}

// InboxReceived applies an inbound message. It returns the kind the
// message was handled as, or zero when the link is closed.
func (l *Link) InboxReceived(msg appmsg.Dictionary) decoder.Kind {
	if !l.open {
		l.logger.Debug("inbound message on closed link ignored")
		return 0
	}
	kind := l.decoder.Receive(msg, l.state)
	l.tracker.RecordInbound(kind.String())
	return kind
}

// InboxReceivedBytes decodes a wire-format message and applies it. Messages
// larger than the inbox or not decodable are dropped as the host would drop
// them.
func (l *Link) InboxReceivedBytes(data []byte) (decoder.Kind, error) {
	if len(data) > l.params.InboxSize {
		l.InboxDropped(appmsg.ResultBufferOverflow)
		return 0, fmt.Errorf("%w: %d bytes, inbox %d", linkerrors.ErrMessageTooLarge, len(data), l.params.InboxSize)
	}
	msg, err := appmsg.Decode(data)
	if err != nil {
		l.InboxDropped(appmsg.ResultInternalError)
		return 0, err
	}
	return l.InboxReceived(msg), nil
}

// InboxDropped records an inbound message the host discarded.
func (l *Link) InboxDropped(reason appmsg.Result) {
	if !l.open {
		return
	}
	l.controller.OnDropped(reason)
	l.tracker.RecordDropped()
}

// OutboxSent records a delivery acknowledgement.
func (l *Link) OutboxSent(msg appmsg.Dictionary) {
	if !l.open {
		return
	}
	l.controller.OnSent(msg)
	l.tracker.RecordSent()
}

// OutboxFailed records a delivery failure and resubmits the request. It
// returns whether the resubmission was handed to the transport.
func (l *Link) OutboxFailed(msg appmsg.Dictionary, reason appmsg.Result) bool {
	if !l.open {
		return false
	}
	l.tracker.RecordFailure(reason.String())
	ok := l.controller.OnFailed(msg, reason, l.state)
	l.tracker.RecordRequest(ok)
	return ok
}

// Request submits a weather request built from the current settings. A
// closed link submits nothing and returns false.
func (l *Link) Request() bool {
	if !l.open {
		l.logger.Debug("request on closed link ignored")
		return false
	}
	ok := l.controller.Request(l.state)
	l.tracker.RecordRequest(ok)
	return ok
}

// State returns the watch face state the link mutates.
func (l *Link) State() *weather.Data { return l.state }

// SessionID returns the identifier attached to every log line of this link.
func (l *Link) SessionID() string { return l.id }

// Retries returns the current consecutive failure count.
func (l *Link) Retries() int { return l.controller.Retries() }

// Metadata returns the session record so far.
func (l *Link) Metadata(version string, previous *metadata.SessionRef) *metadata.SessionMetadata {
	return l.tracker.GenerateMetadata(version, l.id, l.params, previous)
}

// limitedTransport refuses messages that do not fit the outbox.
type limitedTransport struct {
	request.Transport
	size   int
	logger *slog.Logger
}

func (t *limitedTransport) Send(msg appmsg.Dictionary) appmsg.Result {
	if _, err := appmsg.EncodeLimit(msg, t.size); err != nil {
		t.logger.Debug("outbound message rejected", "error", err)
		return appmsg.ResultBufferOverflow
	}
	return t.Transport.Send(msg)
}
