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
	"log/slog"
	"time"

	"github.com/sirseerhq/weather-link/internal/icons"
	"github.com/sirseerhq/weather-link/internal/output"
	"github.com/sirseerhq/weather-link/internal/weather"
)

// ConsoleDisplays stands in for the battery indicator and the debug
// overlay. It logs every change and remembers the current state.
type ConsoleDisplays struct {
	Battery     bool
	Debug       bool
	LastMessage string
	logger      *slog.Logger
}

// NewConsoleDisplays returns displays that log through logger.
func NewConsoleDisplays(logger *slog.Logger) *ConsoleDisplays {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsoleDisplays{logger: logger}
}

func (d *ConsoleDisplays) EnableBattery() {
	d.Battery = true
	d.logger.Info("battery display", "enabled", true)
}

func (d *ConsoleDisplays) DisableBattery() {
	d.Battery = false
	d.logger.Info("battery display", "enabled", false)
}

func (d *ConsoleDisplays) EnableDebug() {
	d.Debug = true
	d.logger.Info("debug overlay", "enabled", true)
}

func (d *ConsoleDisplays) DisableDebug() {
	d.Debug = false
	d.logger.Info("debug overlay", "enabled", false)
}

func (d *ConsoleDisplays) DebugWeather(st *weather.Data) {
	d.logger.Info("debug overlay weather",
		"temp", st.Temperature,
		"cond", st.Condition,
		"pub_date", st.PubDate.String(),
		"status", st.Status)
}

func (d *ConsoleDisplays) DebugMessage(msg string) {
	d.LastMessage = msg
	d.logger.Info("debug overlay message", "message", msg)
}

// Snapshot is one rendered frame of the watch face.
type Snapshot struct {
	Frame   int           `json:"frame"`
	Session string        `json:"session,omitempty"`
	Icon    string        `json:"icon"`
	State   *weather.Data `json:"state"`
}

// Renderer writes a Snapshot for every refresh.
type Renderer struct {
	out     output.RecordWriter
	session string
	frames  int
	now     func() time.Time
	logger  *slog.Logger
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out output.RecordWriter, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{out: out, now: time.Now, logger: logger}
}

// SetSession labels subsequent frames.
func (r *Renderer) SetSession(id string) { r.session = id }

// Frames returns the number of frames rendered.
func (r *Renderer) Frames() int { return r.frames }

func (r *Renderer) Refresh(st *weather.Data) {
	r.frames++
	icon := icons.ForCondition(st.Provider, int(st.Condition), st.IsDaytime(r.now()))

	// A failed frame write is logged; the watch face keeps running.
	if err := r.out.Write(Snapshot{
		Frame:   r.frames,
		Session: r.session,
		Icon:    icon.String(),
		State:   st,
	}); err != nil {
		r.logger.Warn("failed to render frame", "frame", r.frames, "error", err)
	}
}
