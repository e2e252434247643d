// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/data"
	"laptudirm.com/x/rps/pkg/rps/move"
)

// rps rules
func Rules() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [variant]",
		Short: "Show the scoring rules of a variant",
		Long: heredoc.Doc(`rules prints how points are awarded in the given variant
			and which moves beat which. The variant can be classic
			(rock, paper, scissors) or extended (with spock and
			lizard), and defaults to classic.`),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"classic", "extended"},

		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			variant, err := move.ParseVariant(name)
			if err != nil {
				return err
			}

			printRules(cmd.OutOrStdout(), variant)
			return nil
		},
	}
}

func printRules(w io.Writer, variant move.Variant) {
	info := data.Variants[variant.Name()]

	fmt.Fprintf(w, "\x1b[32m%s\x1b[0m\n\n", info.Title)
	fmt.Fprintln(w, info.Rules)

	for _, m := range variant.Moves() {
		var beaten []string
		for _, loser := range variant.Beats(m) {
			beaten = append(beaten, loser.String())
		}

		fmt.Fprintf(w, "  %s %-9s beats %s\n", m.Symbol(), m, strings.Join(beaten, ", "))
	}
}
