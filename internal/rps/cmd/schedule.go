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

	"github.com/spf13/cobra"
)

// rps schedule
func Schedule() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [tournament-file]",
		Short: "Show the order in which the matches will be played",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			game, _, err := loadTournament(args)
			if err != nil {
				return err
			}

			session, err := NewSession(game, "", cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return session.next([]string{fmt.Sprint(max(game.RemainingCount(), 1))})
		},
	}
}
