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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// rps play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play [tournament-file]",
		Short: "Run a tournament interactively",
		Long: heredoc.Doc(`play starts an interactive session for running a
			tournament. Players are registered with add, results are
			entered with result or play, and the next match to play is
			always picked so that the players furthest behind get to
			catch up first.

			The tournament file is taken from the argument, then from
			$RPS_TOURNAMENT, then from the default location. Without
			one, the session starts with no players. Names containing
			spaces can be given in double quotes, and players can be
			referred to by id or by any unambiguous part of their name.`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			game, path, err := loadTournament(args)
			if err != nil {
				return err
			}

			session, err := NewSession(game, path, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return session.Run(cmd.InOrStdin())
		},
	}
}
