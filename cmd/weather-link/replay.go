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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/weather-link/internal/host"
	"github.com/sirseerhq/weather-link/internal/link"
	"github.com/sirseerhq/weather-link/internal/metadata"
	"github.com/sirseerhq/weather-link/internal/output"
	"github.com/sirseerhq/weather-link/internal/weather"
)

type replayOptions struct {
	rate         float64
	metadataDir  string
	outputFile   string
	disconnected bool
}

func newReplayCommand() *cobra.Command {
	var opts replayOptions

	cmd := &cobra.Command{
		Use:   "replay <file|->",
		Short: "Replay a host event script against a link",
		Long: `Replay a script of host events against a fresh link and print a state
snapshot as NDJSON every time the watch face refreshes.

The script holds one JSON event per line:
  {"event":"inbox","message":{"temperature":68,"condition":32}}
  {"event":"inbox","raw":"<hex encoded dictionary>"}
  {"event":"inbox_dropped","reason":"APP_MSG_BUSY"}
  {"event":"request"}
  {"event":"outbox_sent"}
  {"event":"outbox_failed","reason":"APP_MSG_SEND_TIMEOUT"}
  {"event":"connection","connected":false,"begin":"APP_MSG_OK","send":"APP_MSG_OK"}

Scripts ending in .gz or .zst are decompressed. Use - to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.rate, "rate", 0, "Events per second (default: as fast as possible)")
	cmd.Flags().StringVar(&opts.metadataDir, "metadata", "", "Directory to write session metadata to")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.disconnected, "disconnected", false, "Start with the phone disconnected")
	cmd.Flags().AddFlagSet(storageFlags())

	return cmd
}

func runReplay(cmd *cobra.Command, scriptPath string, opts replayOptions) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var writer output.RecordWriter
	if opts.outputFile == "" {
		writer = output.NewWriter(cmd.OutOrStdout())
	} else {
		fileWriter, fErr := output.NewFileWriter(opts.outputFile)
		if fErr != nil {
			return fErr
		}
		writer = fileWriter
	}
	defer writer.Close()

	script, err := host.OpenScript(scriptPath)
	if err != nil {
		return err
	}
	defer script.Close()

	transport := host.NewTransport(!opts.disconnected, a.logger)
	renderer := host.NewRenderer(writer, a.logger)

	// A ready phone gets an immediate request, as the watch face does.
	var l *link.Link
	l = link.New(weather.New(), link.Options{
		Transport:   transport,
		Storage:     a.storage,
		Displays:    host.NewConsoleDisplays(a.logger),
		Renderer:    renderer,
		StorageName: a.cfg.Storage.Backend,
		MaxRetries:  a.cfg.Link.MaxRetry,
		InboxSize:   a.cfg.Link.InboxSize,
		OutboxSize:  a.cfg.Link.OutboxSize,
		OnReady:     func() { l.Request() },
		Logger:      a.logger,
	})
	renderer.SetSession(l.SessionID())

	// Unreadable settings fall back to defaults; Open has logged them.
	_ = l.Open()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	player := host.NewPlayer(l, transport, host.PlayerOptions{Rate: opts.rate, Logger: a.logger})
	n, playErr := player.Play(ctx, script)
	l.Close()

	if opts.metadataDir != "" {
		if err := saveSessionMetadata(l, opts.metadataDir, a); err != nil {
			return err
		}
	}
	if playErr != nil {
		return fmt.Errorf("replay stopped after %d events: %w", n, playErr)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Replayed %d events, %d frames rendered\n", n, renderer.Frames())
	return nil
}

// saveSessionMetadata writes the session record, chained to the latest
// record already in dir.
func saveSessionMetadata(l *link.Link, dir string, a *app) error {
	previous, err := metadata.LoadLatestMetadata(dir)
	if err != nil {
		a.logger.Warn("previous session metadata unreadable", "error", err)
		previous = nil
	}

	var ref *metadata.SessionRef
	if previous != nil {
		ref = previous.Ref()
	}

	path, err := metadata.SaveMetadata(l.Metadata(version, ref), dir)
	if err != nil {
		return err
	}
	a.logger.Info("session metadata saved", "path", path)
	return nil
}
