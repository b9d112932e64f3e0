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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

var version = "dev"

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weather-link",
		Short: "Exchange weather data between a watch face and its phone companion",
		Long: `weather-link runs the watch face side of the weather data exchange:
it decodes inbound phone messages into the watch face state, persists the
user's settings and submits weather requests with a bounded retry count.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (default: .weather-link.yaml or ~/.weather-link/config.yaml)")

	rootCmd.AddCommand(
		newReplayCommand(),
		newDecodeCommand(),
		newEncodeCommand(),
		newRequestCommand(),
		newSettingsCommand(),
		newIconCommand(),
	)
	return rootCmd
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, linkerrors.ErrInvalidConfig) ||
		errors.Is(err, linkerrors.ErrStorageUnavailable) ||
		errors.Is(err, linkerrors.ErrStateCorrupted) {
		return 2 // Configuration/storage errors
	}

	if errors.Is(err, linkerrors.ErrMalformedMessage) ||
		errors.Is(err, linkerrors.ErrMessageTooLarge) ||
		errors.Is(err, linkerrors.ErrUnknownKey) {
		return 3 // Message format errors
	}

	return 1 // General error
}
