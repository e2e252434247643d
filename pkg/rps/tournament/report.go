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

package tournament

import (
	"fmt"
	"io"

	"laptudirm.com/x/rps/pkg/rps/stats"
)

// Report writes the standings table to w.
func (game *Game) Report(w io.Writer) {
	fmt.Fprintln(w, "╔═════════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║     Name              Score  Played   Wins Loss Draw  Elo Error ║")
	fmt.Fprintln(w, "╠═════════════════════════════════════════════════════════════════╣")
	for i, player := range game.Leaderboard() {
		record := stats.Record{Wins: int(player.Wins), Draws: int(player.Draws), Losses: int(player.Losses)}
		_, elo, _ := record.Elo()

		fmt.Fprintf(w,
			"║ %2d. %-15.15s   %5d  %6d   %4d %4d %4d %4s %5s ║\n",
			i+1, player.Name,
			player.Score, player.Played,
			player.Wins, player.Losses, player.Draws,
			stats.FormatElo(elo), stats.FormatMargin(record.ErrorMargin()),
		)
	}
	fmt.Fprintln(w, "╚═════════════════════════════════════════════════════════════════╝")
}

// ReportPlayed writes the completed matches, earliest first, to w.
func (game *Game) ReportPlayed(w io.Writer) {
	for _, played := range game.PlayedMatches() {
		name1, _ := game.PlayerName(played.Player1)
		name2, _ := game.PlayerName(played.Player2)
		score1, score2 := played.Scores(game.variant)

		fmt.Fprintf(w, "%6d  R%-3d %s %-8s %2dp  %15s vs %-15s  %2dp %-8s %s\n",
			played.Priority, played.Round,
			played.Move1.Symbol(), played.Move1, score1,
			name1, name2,
			score2, played.Move2, played.Move2.Symbol(),
		)
	}
}
