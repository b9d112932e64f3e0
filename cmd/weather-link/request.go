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
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/weather-link/internal/appmsg"
	"github.com/sirseerhq/weather-link/internal/request"
)

// requestOutput is printed by the request command.
type requestOutput struct {
	Message appmsg.Dictionary `json:"message"`
	Hex     string            `json:"hex"`
	Size    int               `json:"size"`
}

func newRequestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Print the weather request built from the stored settings",
		Long: `Load the stored settings and print the request dictionary the watch face
would send to the phone, as JSON and in its binary form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.loadSettings()

			msg := request.Message(st)
			data, err := appmsg.EncodeLimit(msg, a.cfg.Link.OutboxSize)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(requestOutput{
				Message: msg,
				Hex:     hex.EncodeToString(data),
				Size:    len(data),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().AddFlagSet(storageFlags())
	return cmd
}
