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
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/weather-link/internal/appmsg"
	linkerrors "github.com/sirseerhq/weather-link/internal/errors"
)

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a binary message dictionary",
		Long: `Decode a hex encoded message dictionary and print its tuples as a JSON
object keyed by key name. Messages larger than the configured inbox are
rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := parseHex(args[0])
			if err != nil {
				return err
			}
			if len(data) > cfg.Link.InboxSize {
				return fmt.Errorf("%w: %d bytes, inbox %d", linkerrors.ErrMessageTooLarge, len(data), cfg.Link.InboxSize)
			}

			msg, err := appmsg.Decode(data)
			if err != nil {
				return err
			}
			out, err := json.Marshal(msg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newEncodeCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "encode <json>",
		Short: "Encode a JSON dictionary to the binary message format",
		Long: `Encode a flat JSON object into a hex encoded message dictionary. Member
names are key names (e.g. "temperature") or key numbers. Numbers encode as
int32, booleans as uint8 and strings as cstrings.`,
		Example: `  weather-link encode '{"service":"yahoo","scale":"F","debug":false,"battery":true}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Link.OutboxSize
			}

			var msg appmsg.Dictionary
			if err := msg.UnmarshalJSON([]byte(args[0])); err != nil {
				return err
			}
			data, err := appmsg.EncodeLimit(msg, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum encoded size in bytes (default: configured outbox size)")
	return cmd
}

// parseHex accepts hex with optional whitespace and 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Join(strings.Fields(s), "")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex: %v", linkerrors.ErrMalformedMessage, err)
	}
	return data, nil
}
