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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/weather-link/internal/icons"
	"github.com/sirseerhq/weather-link/internal/weather"
)

const providerOpen = "open"

func newIconCommand() *cobra.Command {
	var (
		provider string
		night    bool
	)

	cmd := &cobra.Command{
		Use:   "icon <code>",
		Short: "Resolve a weather condition code to its icon",
		Long: fmt.Sprintf(`Resolve a provider condition or forecast code to the icon drawn by the
watch face. Codes outside a table resolve to not_available. Put negative
codes after -- so they are not read as flags:

  weather-link icon --provider underground -- -1

Providers: %s`, strings.Join(iconProviders(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid condition code %q: %w", args[0], err)
			}

			icon, err := resolveIcon(provider, code, !night)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), icon)
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "yahoo", "Code table: "+strings.Join(iconProviders(), ", "))
	cmd.Flags().BoolVar(&night, "night", false, "Use the night variant of the icon")
	return cmd
}

func resolveIcon(provider string, code int, daytime bool) (icons.Icon, error) {
	if provider == providerOpen {
		return icons.ForCondition(weather.ProviderOpenWeather, code, daytime), nil
	}
	table, ok := icons.Tables[provider]
	if !ok {
		return icons.NotAvailable, fmt.Errorf("unknown icon provider %q (want one of %s)", provider, strings.Join(iconProviders(), ", "))
	}
	return table.Lookup(code, daytime), nil
}

func iconProviders() []string {
	names := []string{providerOpen}
	for name := range icons.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
