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
	"math/rand/v2"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/rps/pkg/rps/tournament"
)

const SPIN = 14

// rps simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [tournament-file]",
		Short: "Play out a tournament with random moves",
		Long: heredoc.Doc(`simulate plays every remaining match of the tournament in
			the order play would suggest, with both players picking
			their moves at random, and prints the final standings.`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			game, _, err := loadTournament(args)
			if err != nil {
				return err
			}

			seed, _ := cmd.Flags().GetUint64("seed")
			if !cmd.Flag("seed").Changed {
				seed = rand.Uint64()
			}

			delay, _ := cmd.Flags().GetDuration("delay")

			logrus.WithField("seed", seed).Debug("simulating tournament")
			if err := simulate(game, seed, delay, cmd.OutOrStdout()); err != nil {
				return err
			}

			game.Report(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().Uint64P("seed", "s", 0, "Seed for the random moves")
	cmd.Flags().DurationP("delay", "d", 500*time.Millisecond, "How long each match takes")

	return cmd
}

// simulate plays the remaining matches of game in next-match order with
// random moves drawn from a generator seeded with seed.
func simulate(game *tournament.Game, seed uint64, delay time.Duration, out io.Writer) error {
	r := rand.New(rand.NewPCG(seed, seed))
	moves := game.Variant().Moves()

	session, err := NewSession(game, "", out)
	if err != nil {
		return err
	}

	for {
		match, found := game.NextMatch()
		if !found {
			return nil
		}

		if delay > 0 {
			name1, _ := game.PlayerName(match.Player1)
			name2, _ := game.PlayerName(match.Player2)

			s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(out))
			s.Suffix = fmt.Sprintf(" %s vs %s", name1, name2)

			s.Start() // Start the ~working~ spinner.
			time.Sleep(delay)
			s.Stop() // Stop the ~working~ spinner.
		}

		move1 := moves[r.IntN(len(moves))]
		move2 := moves[r.IntN(len(moves))]
		if err := session.record(match, match.Player1, move1, move2); err != nil {
			return err
		}
	}
}
