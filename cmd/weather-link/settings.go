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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/weather-link/internal/host"
	"github.com/sirseerhq/weather-link/internal/persist"
	"github.com/sirseerhq/weather-link/internal/weather"
)

// settingsView is the stored configuration as printed by settings show.
type settingsView struct {
	Provider weather.Provider `json:"provider"`
	Scale    weather.Scale    `json:"scale"`
	Debug    bool             `json:"debug"`
	Battery  bool             `json:"battery"`
}

func viewOf(st *weather.Data) settingsView {
	return settingsView{
		Provider: st.Provider,
		Scale:    st.Scale,
		Debug:    st.Debug,
		Battery:  st.Battery,
	}
}

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the stored watch face settings",
	}
	cmd.AddCommand(newSettingsShowCommand(), newSettingsSetCommand(), newSettingsResetCommand())
	return cmd
}

func newSettingsShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings, with defaults for missing keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.loadSettings()
			return printSettings(cmd, st)
		},
	}
	cmd.Flags().AddFlagSet(storageFlags())
	return cmd
}

func newSettingsSetCommand() *cobra.Command {
	var (
		provider string
		scale    string
		debug    bool
		battery  bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change stored settings",
		Long: `Change one or more stored settings. Unknown providers fall back to yahoo
and unknown scales to F, exactly as a configuration message from the phone
would.`,
		Example: `  weather-link settings set --provider open --scale C
  weather-link settings set --battery=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.loadSettings()

			flags := cmd.Flags()
			if flags.Changed("provider") {
				st.Provider = weather.ParseProvider(provider)
			}
			if flags.Changed("scale") {
				st.Scale = weather.ParseScale(scale)
			}
			if flags.Changed("debug") {
				st.Debug = debug
			}
			if flags.Changed("battery") {
				st.Battery = battery
			}

			if err := a.adapter().Store(st); err != nil {
				return err
			}
			return printSettings(cmd, st)
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "Weather provider: yahoo or open")
	cmd.Flags().StringVar(&scale, "scale", "", "Temperature scale: F or C")
	cmd.Flags().BoolVar(&debug, "debug", false, "Show the debug overlay")
	cmd.Flags().BoolVar(&battery, "battery", true, "Show the battery indicator")
	cmd.Flags().AddFlagSet(storageFlags())
	return cmd
}

func newSettingsResetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every stored setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.resetStorage(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Settings reset to defaults")
			return nil
		},
	}
	cmd.Flags().AddFlagSet(storageFlags())
	return cmd
}

func (a *app) adapter() *persist.Adapter {
	return persist.NewAdapter(a.storage, host.NewConsoleDisplays(a.logger), a.logger)
}

// loadSettings returns a fresh state with the stored settings applied.
// Unreadable keys fall back to defaults and are reported in the log only.
func (a *app) loadSettings() *weather.Data {
	st := weather.New()
	if err := a.adapter().Load(st); err != nil {
		a.logger.Warn("some settings fell back to defaults", "error", err)
	}
	return st
}

func printSettings(cmd *cobra.Command, st *weather.Data) error {
	out, err := json.MarshalIndent(viewOf(st), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
